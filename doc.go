/*
Package opencc binds the OpenCC (Open Chinese Convert, 開放中文轉換) native
library for conversion between Traditional Chinese (Mainland, Taiwan and
Hong Kong standards), Simplified Chinese, and Japanese Kanji
(Shinjitai/Kyūjitai).

The conversion engine itself lives in the OpenCC C++ library; this package
owns the lifecycle of a native converter handle, marshals strings across the
boundary, and maps native failure modes onto a small error taxonomy. Each
Converter serializes native calls on an internal lock, so one handle may be
shared by many goroutines.

	dir := os.TempDir()
	opencc.GenerateStaticDictionary(dir, opencc.TW2SP)

	cc, err := opencc.New(filepath.Join(dir, opencc.TW2SP.FileName()))
	if err != nil {
	    log.Fatal(err)
	}
	defer cc.Close()

	s, err := cc.Convert("涼風有訊")  // "凉风有讯"

The reference dictionaries of the OpenCC 1.1 release are compiled into the
binary and can be written out with GenerateStaticDictionary, so programs can
run on hosts without an OpenCC data installation. The native library itself
must still be linkable; see cmd/openccflags for non-standard installations.

Further Reading

	https://opencc.byvoid.com/
	https://github.com/BYVoid/OpenCC

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package opencc

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'opencc'
func tracer() tracing.Trace {
	return tracing.Select("opencc")
}
