package rules

import (
	"regexp"

	"github.com/kotolint/kotolint/internal/domain"
)

// builtinSpec keeps the table readable; suggestion "" with hasSug=false
// means the rule carries no replacement.
type builtinSpec struct {
	id       string
	pattern  string
	message  string
	sug      *string
	severity domain.Severity
}

func sug(s string) *string { return &s }

// Built-in detection rules for common Japanese typos, obsolete kanji
// spellings and width/punctuation issues. Patterns are matched against
// span text; replacement templates use regexp expansion syntax.
var builtinSpecs = []builtinSpec{
	// Obsolete or stiff kanji spellings, modern kana preferred (INFO).
	{"OLD_MOCHIRON", `勿論`, "旧字体/硬い表記 '勿論' -> 'もちろん'", sug("もちろん"), domain.SeverityInfo},
	{"OLD_ARIGATOU", `有り難う`, "旧表記 '有り難う' -> 'ありがとう'", sug("ありがとう"), domain.SeverityInfo},
	{"OLD_ARIGATOU_2", `有難う`, "旧表記 '有難う' -> 'ありがとう'", sug("ありがとう"), domain.SeverityInfo},
	{"OLD_GOZAI", `御座い`, "旧表記 '御座い' -> 'ござい'", sug("ござい"), domain.SeverityInfo},
	{"OLD_GOZAIMASU", `御座います`, "旧表記 '御座います' -> 'ございます'", sug("ございます"), domain.SeverityInfo},
	{"OLD_GOZAIMASHITA", `御座いました`, "旧表記 '御座いました' -> 'ございました'", sug("ございました"), domain.SeverityInfo},
	{"OLD_YOROSHIKU", `(?:宜|可)し?しく`, "'宜しく/可しく' -> 'よろしく' を推奨", sug("よろしく"), domain.SeverityInfo},
	{"OLD_HARUKA", `[遙遥]か`, "'遙か/遥か' -> 'はるか' (ひらがな推奨)", sug("はるか"), domain.SeverityInfo},
	{"OLD_ONEGAI", `御願い`, "'御願い' -> 'お願い'", sug("お願い"), domain.SeverityInfo},
	{"OLD_ARAKAJIME", `予め`, "'予め' -> 'あらかじめ' を推奨", sug("あらかじめ"), domain.SeverityInfo},
	{"OLD_OITE", `於(?:い)?て`, "'於いて/於て' -> 'おいて' を推奨", sug("おいて"), domain.SeverityInfo},
	{"OLD_MARENI", `稀に`, "'稀に' -> 'まれに' を推奨", sug("まれに"), domain.SeverityInfo},
	{"OLD_CHINAMINI", `因みに|因に`, "'因みに/因に' -> 'ちなみに' を推奨", sug("ちなみに"), domain.SeverityInfo},
	{"OLD_NAO", `尚`, "'尚' -> 'なお' を推奨", sug("なお"), domain.SeverityInfo},
	{"OLD_TADASHI", `但し`, "'但し' -> 'ただし' を推奨", sug("ただし"), domain.SeverityInfo},
	{"OLD_MOTTAINAI", `勿体無い`, "'勿体無い' -> 'もったいない' を推奨", sug("もったいない"), domain.SeverityInfo},
	{"OLD_ARUIWA", `或いは`, "'或いは' -> 'あるいは' を推奨", sug("あるいは"), domain.SeverityInfo},
	{"OLD_KATSU", `且つ`, "'且つ' -> 'かつ' を推奨", sug("かつ"), domain.SeverityInfo},
	{"OLD_YOUNI", `様に`, "'様に' -> 'ように' を推奨", sug("ように"), domain.SeverityInfo},
	{"OLD_ANATA", `貴(?:方|女|男)`, "'貴方/貴女/貴男' -> 'あなた' を推奨", sug("あなた"), domain.SeverityInfo},
	{"OLD_TADAIMA", `只今`, "'只今' -> 'ただいま' を推奨", sug("ただいま"), domain.SeverityInfo},
	{"OLD_MADE", `迄`, "'迄' -> 'まで' を推奨", sug("まで"), domain.SeverityInfo},
	{"OLD_SAMAZAMA", `様々`, "'様々' -> 'さまざま' を推奨", sug("さまざま"), domain.SeverityInfo},
	{"OLD_DEKIAGA", `出来上が`, "'出来上が' -> 'できあが' を推奨", sug("できあが"), domain.SeverityInfo},
	{"OLD_DEKIMASU", `出来ます`, "'出来ます' -> 'できます' を推奨", sug("できます"), domain.SeverityInfo},
	{"OLD_OHAYOU", `お早う`, "'お早う' -> 'おはよう' を推奨", sug("おはよう"), domain.SeverityInfo},
	{"OLD_OMEDETOU", `お目出度(?:う|い)`, "'お目出度い/お目出度う' -> 'おめでたい/おめでとう' を推奨", nil, domain.SeverityInfo},

	// Auxiliary verbs written in kanji (WARN).
	{"AUX_KUDASAI", `下さい`, "補助動詞 '下さい' -> 'ください' を推奨", sug("ください"), domain.SeverityWarn},
	{"AUX_KUDASAIMASE", `下さいませ`, "補助動詞 '下さいませ' -> 'くださいませ' を推奨", sug("くださいませ"), domain.SeverityWarn},
	{"AUX_ITASHIMASU", `致します`, "補助動詞 '致します' -> 'いたします' を推奨", sug("いたします"), domain.SeverityWarn},
	{"AUX_ITASHIMASHITA", `致しました`, "補助動詞 '致しました' -> 'いたしました' を推奨", sug("いたしました"), domain.SeverityWarn},
	{"AUX_ITASHIMASEN", `致しません`, "補助動詞 '致しません' -> 'いたしません' を推奨", sug("いたしません"), domain.SeverityWarn},
	{"AUX_ITADAKIMASU", `頂きます`, "補助動詞 '頂きます' -> 'いただきます' を推奨", sug("いただきます"), domain.SeverityWarn},
	{"AUX_ITADAITA", `頂いた`, "補助動詞 '頂いた' -> 'いただいた' を推奨", sug("いただいた"), domain.SeverityWarn},
	{"AUX_ITADAKEMASUKA", `頂けますか`, "補助動詞 '頂けますか' -> 'いただけますか' を推奨", sug("いただけますか"), domain.SeverityWarn},
	{"AUX_DEKI", `出来(?:る|た|て|ない|ません|ました|ませんでした|なかった|ませんか)`, "'出来' -> 'でき' のひらがな表記を推奨", nil, domain.SeverityWarn},
	{"OLD_TAME", `為(?:に|の)`, "'為に/為の' -> 'ために/ための' を推奨", nil, domain.SeverityInfo},

	// Character width issues.
	{"WIDTH_HALF_KANA", `[ｦ-ﾟ]+`, "半角カナが含まれています (全角カタカナへの統一を検討)", nil, domain.SeverityWarn},
	{"WIDTH_FULL_ALNUM", `[Ａ-Ｚａ-ｚ０-９]+`, "全角英数字が含まれています (半角英数字への統一を検討)", nil, domain.SeverityInfo},
	{"WIDTH_HALF_CHOON", `ｰ+`, "半角長音記号 'ｰ' が含まれます (全角 'ー' へ統一を検討)", sug("ー"), domain.SeverityInfo},
	{"WIDTH_FULL_SPACE", `　+`, "全角スペースが含まれています (半角スペースへの統一を検討)", sug(" "), domain.SeverityError},

	// Punctuation runs.
	{"PUNCT_RUN", `、、|。。`, "句読点が連続しています", nil, domain.SeverityWarn},
	{"PUNCT_EXCLAIM_RUN", `[！!]{2,}`, "感嘆符が連続しています", nil, domain.SeverityInfo},
	{"PUNCT_QUESTION_RUN", `[？?]{2,}`, "疑問符が連続しています", nil, domain.SeverityInfo},

	// Honorific prefixes safe to normalize (INFO).
	{"HONORIFIC_RENRAKU", `御連絡`, "'御連絡' -> 'ご連絡' を推奨", sug("ご連絡"), domain.SeverityInfo},
	{"HONORIFIC_KAKUNIN", `御確認`, "'御確認' -> 'ご確認' を推奨", sug("ご確認"), domain.SeverityInfo},
	{"HONORIFIC_ANNAI", `御案内`, "'御案内' -> 'ご案内' を推奨", sug("ご案内"), domain.SeverityInfo},
	{"HONORIFIC_RIYOU", `御利用`, "'御利用' -> 'ご利用' を推奨", sug("ご利用"), domain.SeverityInfo},
	{"HONORIFIC_TOIAWASE", `御問い合わせ`, "'御問い合わせ' -> 'お問い合わせ' を推奨", sug("お問い合わせ"), domain.SeverityInfo},
	{"HONORIFIC_NAMAE", `御名前`, "'御名前' -> 'お名前' を推奨", sug("お名前"), domain.SeverityInfo},
	{"HONORIFIC_JUUSHO", `御住所`, "'御住所' -> 'ご住所' を推奨", sug("ご住所"), domain.SeverityInfo},
	{"HONORIFIC_TESUU", `御手数`, "'御手数' -> 'お手数' を推奨", sug("お手数"), domain.SeverityInfo},
	{"HONORIFIC_RAN", `御覧`, "'御覧' -> 'ご覧' を推奨", sug("ご覧"), domain.SeverityInfo},

	// Business spelling variants (INFO, conservative).
	{"BIZ_OTOIAWASE", `お問合せ`, "'お問合せ' -> 'お問い合わせ' を推奨", sug("お問い合わせ"), domain.SeverityInfo},
	{"BIZ_TORIATSUKAI", `取扱い`, "'取扱い' -> '取り扱い' を推奨", sug("取り扱い"), domain.SeverityInfo},
	{"BIZ_MITSUMORI", `見積り`, "'見積り' -> '見積もり' を推奨", sug("見積もり"), domain.SeverityInfo},

	// Spacing and editing slips.
	{"SPACE_RUN", `[ \t]{2,}`, "連続スペースを1つに", sug(" "), domain.SeverityInfo},
	{"SPACE_BETWEEN_JP", `([\x{3040}-\x{30FF}\x{4E00}-\x{9FFF}]) +([\x{3040}-\x{30FF}\x{4E00}-\x{9FFF}])`, "日本語の間のスペースを削除", sug("$1$2"), domain.SeverityInfo},
	{"PUNCT_AFTER_PERIOD", `[。．][、，]+`, "句点直後の読点を削除/統一", sug("。"), domain.SeverityWarn},
	{"PUNCT_AFTER_COMMA", `[、，][。．]+`, "読点直後の句点を削除/統一", sug("、"), domain.SeverityWarn},
	{"EDIT_NIRISHITE", `にりして`, "編集ミスの可能性: 'にりして' -> 'にして'", sug("にして"), domain.SeverityWarn},

	// Mojibake detection.
	{"MOJIBAKE_REPLACEMENT", "�{2,}", "文字化けの可能性（置換文字が連続）", nil, domain.SeverityError},
	{"MOJIBAKE_LATIN", `(?:Ã.|Â.){2,}`, "文字化けの可能性（エンコーディング不一致）", nil, domain.SeverityWarn},
}

// Builtin returns a fresh copy of the built-in rule set. Patterns are
// compiled once at package init; a bad built-in pattern is a programmer
// error.
func Builtin() []TypoPattern {
	out := make([]TypoPattern, len(builtinPatterns))
	copy(out, builtinPatterns)
	return out
}

var builtinPatterns = func() []TypoPattern {
	patterns := make([]TypoPattern, 0, len(builtinSpecs))
	for _, s := range builtinSpecs {
		patterns = append(patterns, TypoPattern{
			ID:             s.id,
			Pattern:        regexp.MustCompile(s.pattern),
			Message:        s.message,
			Severity:       s.severity,
			Replacement:    deref(s.sug),
			HasReplacement: s.sug != nil,
		})
	}
	return patterns
}()

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
