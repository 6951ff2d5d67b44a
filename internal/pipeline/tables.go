package pipeline

import "adrgoods/internal"

// Free text the sheet uses instead of codes.
const (
	phraseCarriageProhibited = "VERVOER VERBODEN"
	phraseNotSubjectToADR    = "NIET ONDERWORPEN AAN HET ADR"
	labelNone                = "GEEN"
)

const (
	// 7X: any one of the radioactive labels applies.
	labelAnyRadioactive = "7X"

	// Special provision for articles containing dangerous goods; the label
	// depends on the UN number.
	provisionArticles = "5.2.2.1.12"

	// Special provision 671: category depends on packing group, else 2.
	provision671       = "BP671"
	categoryUnderscore = "_"
)

var radioactiveLabels = []string{"7A", "7B", "7C", "7E"}

var validCategories = map[internal.TransportCategory]struct{}{
	"0": {}, "1": {}, "2": {}, "3": {}, "4": {},
	internal.CategoryNone:               {},
	internal.CategoryCarriageProhibited: {},
	internal.CategoryNotSubjectToADR:    {},
}

var validTunnelCodes = map[internal.TunnelCode]struct{}{
	"B": {}, "B1000C": {}, "B/D": {}, "B/E": {}, "C5000D": {},
	"C": {}, "C/D": {}, "C/E": {}, "D": {}, "D/E": {}, "E": {},
	internal.TunnelNone:               {},
	internal.TunnelCarriageProhibited: {},
	internal.TunnelNotSubjectToADR:    {},
}

var validLabels = map[string]struct{}{
	"1": {}, "1.4": {}, "1.5": {}, "1.6": {},
	"2.1": {}, "2.2": {}, "2.3": {},
	"3": {},
	"4.1": {}, "4.2": {}, "4.3": {},
	"5.1": {}, "5.2": {},
	"6.1": {}, "6.2": {},
	"7A": {}, "7B": {}, "7C": {}, "7E": {},
	"8": {}, "9": {}, "9A": {},
}

// articleLabels maps UN numbers of articles containing dangerous goods to
// the label of the goods they contain.
var articleLabels = map[string]string{
	"3537": "2.1",
	"3538": "2.2",
	"3539": "2.3",
	"3540": "3",
	"3541": "4.1",
	"3542": "4.2",
	"3543": "4.3",
	"3544": "5.1",
	"3545": "5.2",
	"3546": "6.1",
	"3547": "8",
	"3548": "9",
}

// UN numbers whose sheet row has no transport category although one applies.
var categoryExceptions = map[string]struct{}{
	"2071": {},
	"3363": {},
}
