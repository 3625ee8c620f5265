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

// Package code defines the machine-readable classification that an alert may
// carry.
//
// A code answers "what kind of failure is this?" independently of where it
// happened (that is the scope's job). Codes are short, lower-case,
// underscore-separated identifiers such as "invalid", "not_found" or
// "unavailable", which makes them stable keys for transport mapping.
//
// Unlike scopes, a present code must be valid: Validate rejects "". Alerts that
// were built without a code report Empty, and the transport mapper treats
// that as Internal.
package code
