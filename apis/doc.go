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

// Package apis defines the small contracts shared by the dresult transport
// adapters (adapter, httpx, grpcx, otelx).
//
// It holds the Mapper interface that turns an alert classification
// (code, scope) into HTTP and gRPC statuses, and the view types used to expose
// a Result outside the process. Nothing here depends on the concrete Result
// type, so adapters and user-defined mappers can share these shapes without
// importing each other.
package apis
