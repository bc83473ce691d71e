// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

/*
Package report provides the diagnostics framework used by the CraftBlock
front end. It offers diagnostic construction and text rendering.

Diagnostics are collected into a [Report], which is a helpful builder over
a slice of [Diagnostic]s. Each [Diagnostic] consists of a Go error plus
metadata for rendering, such as source code spans, a label, notes, and
suggestions.

Reports can be rendered using a [Renderer], which provides a compact
one-line form and a snippet form that shows the offending source line.

# Defining Diagnostics

Generally, to define a diagnostic, you should define a new Go error type,
and then make it implement [Diagnose]. This has two benefits:

 1. When someone using the front end as a library looks through a Report,
    they can type assert Diagnostic.Err to programmatically determine the
    nature of a diagnostic.

 2. When emitting the diagnostic in different places you get the same UX.
    This means you should do this even if the error type will be unexported.

Sometimes, (2) is not enough of a benefit, in which case you can just use
Report.Errorf() and friends.

# Labels

A label is a short secondary hint attached to a diagnostic after it has
been recorded, typically by a grammar rule that knows more about what went
wrong than the generic syntax error does. Use [Report.Last] together with
[Label] to attach one.
*/
package report
