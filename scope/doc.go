/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package scope defines the optional grouping tag carried by alerts.
//
// A scope answers "which part of the system raised this alert?", e.g.:
//
//   - "billing.invoice.render"
//   - "storage.pg"
//   - "auth.jwt.verify"
//
// Scopes are dot-separated hierarchical identifiers. They are used to filter
// the alerts of a Result (see Within) and, at the transport edge, to select
// prefix rules in the status mapper.
//
// The zero value ("") means "no scope" and is always valid.
package scope
