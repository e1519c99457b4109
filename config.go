package opencc

// Config identifies one of the 14 conversion configurations shipped with
// OpenCC. A Config doubles as the relative file name of its JSON config
// (see FileName and String), ready to be joined onto a dictionary directory.
type Config int

const (
	// HK2S converts Traditional Chinese (Hong Kong standard) to Simplified Chinese.
	HK2S Config = iota
	// HK2T converts Traditional Chinese (Hong Kong standard) to Traditional Chinese.
	HK2T
	// JP2T converts New Japanese Kanji (Shinjitai) to Traditional Chinese characters (Kyūjitai).
	JP2T
	// S2T converts Simplified Chinese to Traditional Chinese.
	S2T
	// S2TW converts Simplified Chinese to Traditional Chinese (Taiwan standard).
	S2TW
	// S2TWP converts Simplified Chinese to Traditional Chinese (Taiwan standard) with Taiwanese idiom.
	S2TWP
	// T2HK converts Traditional Chinese (OpenCC standard) to Hong Kong standard.
	T2HK
	// T2JP converts Traditional Chinese characters (Kyūjitai) to New Japanese Kanji (Shinjitai).
	T2JP
	// T2TW converts Traditional Chinese (OpenCC standard) to Taiwan standard.
	T2TW
	// T2S converts Traditional Chinese to Simplified Chinese.
	T2S
	// S2HK converts Simplified Chinese to Traditional Chinese (Hong Kong standard).
	S2HK
	// TW2S converts Traditional Chinese (Taiwan standard) to Simplified Chinese.
	TW2S
	// TW2SP converts Traditional Chinese (Taiwan standard) to Simplified Chinese with Mainland idiom.
	TW2SP
	// TW2T converts Traditional Chinese (Taiwan standard) to Traditional Chinese.
	TW2T
)

// FileName returns the canonical file name of the JSON config, for example
// "tw2sp.json" for TW2SP. It returns the empty string for values outside the
// enumeration.
func (c Config) FileName() string {
	switch c {
	case HK2S:
		return "hk2s.json"
	case HK2T:
		return "hk2t.json"
	case JP2T:
		return "jp2t.json"
	case S2HK:
		return "s2hk.json"
	case S2T:
		return "s2t.json"
	case S2TW:
		return "s2tw.json"
	case S2TWP:
		return "s2twp.json"
	case T2HK:
		return "t2hk.json"
	case T2JP:
		return "t2jp.json"
	case T2S:
		return "t2s.json"
	case T2TW:
		return "t2tw.json"
	case TW2S:
		return "tw2s.json"
	case TW2SP:
		return "tw2sp.json"
	case TW2T:
		return "tw2t.json"
	}
	return ""
}

// String returns the canonical config file name.
func (c Config) String() string {
	return c.FileName()
}
