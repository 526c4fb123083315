/*
Package zhoconv converts text between Simplified and Traditional Chinese
scripts using dictionary-driven, longest-match phrase segmentation (FMMSEG)
and OpenCC-style conversion profiles.

Description

Chinese script conversion is not a character-for-character substitution.
Many simplified characters merge several traditional ones (发 stands for
both 發 and 髮), regional standards disagree on variant forms (Taiwan 裡
versus Hong Kong 裏), and vocabulary differs between locales (mainland
软件 versus Taiwan 軟體). Reliable conversion therefore needs phrase
dictionaries and a segmentation step: the input is walked with forward
maximum matching against a set of phrase tables, and each matched span is
replaced as a whole. This is the algorithm family used by OpenCC
(https://github.com/BYVoid/OpenCC) and its FMMSEG descendants; package
zhoconv is an independent Go implementation of that pipeline.

Typical Usage

Clients create a Converter and hand it text together with one of the
sixteen OpenCC profile names:

   cc, err := zhoconv.New()
   if err != nil { … }
   defer cc.Close()
   out := cc.Convert("简体中文测试", "s2t", false)   // "簡體中文測試"

For one-off conversions a pooled package-level helper is available:

   out, err := zhoconv.Convert("欧洲古国意大利", "s2twp", false)

Converter handles are cheap, but they carry mutable per-call state (the
last-error slot, the parallel-mode flag) and therefore must not be shared
between goroutines. The dictionary data behind them is loaded once per
process, is immutable from then on, and is shared by all handles without
locking.

BSD License

Copyright (c) the zhoconv authors

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

Contents

The dictionary store lives in sub-package dict, the FMMSEG driver in
sub-package segment. Base package zhoconv ties both together: it declares
the closed Config enumeration of conversion profiles, the Converter handle
with its error slot and parallel mode, the script detector ZhoCheck, and a
pooled one-shot API.
*/
package zhoconv

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
