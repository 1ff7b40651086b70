package tokenizer

// Kind identifies the type of a token.
type Kind uint8

const (
	KindEndMarker Kind = iota
	KindName
	KindNumber
	KindString
	KindComment
	KindIndent
	KindDedent
	KindNewlineLogical
	KindNewlineContinuation

	// Operators and punctuation, one kind per fixed spelling.
	KindPlus
	KindPlusEqual
	KindMinus
	KindMinusEqual
	KindStar
	KindStarEqual
	KindDoubleStar
	KindDoubleStarEqual
	KindSlash
	KindSlashEqual
	KindDoubleSlash
	KindDoubleSlashEqual
	KindPercent
	KindPercentEqual
	KindAt
	KindAtEqual
	KindAmpersand
	KindAmpersandEqual
	KindVerticalBar
	KindVerticalBarEqual
	KindCircumflex
	KindCircumflexEqual
	KindTilde
	KindLeftShift
	KindLeftShiftEqual
	KindRightShift
	KindRightShiftEqual
	KindLess
	KindLessEqual
	KindGreater
	KindGreaterEqual
	KindDoubleEqual
	KindNotEqual
	KindEqual
	KindRightArrow
	KindEllipsis
	KindDot
	KindColon
	KindComma
	KindSemicolon
	KindLeftParenthesis
	KindRightParenthesis
	KindLeftSquareBracket
	KindRightSquareBracket
	KindLeftBrace
	KindRightBrace
)

var kindNames = [...]string{
	KindEndMarker:           "EndMarker",
	KindName:                "Name",
	KindNumber:              "Number",
	KindString:              "String",
	KindComment:             "Comment",
	KindIndent:              "Indent",
	KindDedent:              "Dedent",
	KindNewlineLogical:      "NewlineLogical",
	KindNewlineContinuation: "NewlineContinuation",
	KindPlus:                "Plus",
	KindPlusEqual:           "PlusEqual",
	KindMinus:               "Minus",
	KindMinusEqual:          "MinusEqual",
	KindStar:                "Star",
	KindStarEqual:           "StarEqual",
	KindDoubleStar:          "DoubleStar",
	KindDoubleStarEqual:     "DoubleStarEqual",
	KindSlash:               "Slash",
	KindSlashEqual:          "SlashEqual",
	KindDoubleSlash:         "DoubleSlash",
	KindDoubleSlashEqual:    "DoubleSlashEqual",
	KindPercent:             "Percent",
	KindPercentEqual:        "PercentEqual",
	KindAt:                  "At",
	KindAtEqual:             "AtEqual",
	KindAmpersand:           "Ampersand",
	KindAmpersandEqual:      "AmpersandEqual",
	KindVerticalBar:         "VerticalBar",
	KindVerticalBarEqual:    "VerticalBarEqual",
	KindCircumflex:          "Circumflex",
	KindCircumflexEqual:     "CircumflexEqual",
	KindTilde:               "Tilde",
	KindLeftShift:           "LeftShift",
	KindLeftShiftEqual:      "LeftShiftEqual",
	KindRightShift:          "RightShift",
	KindRightShiftEqual:     "RightShiftEqual",
	KindLess:                "Less",
	KindLessEqual:           "LessEqual",
	KindGreater:             "Greater",
	KindGreaterEqual:        "GreaterEqual",
	KindDoubleEqual:         "DoubleEqual",
	KindNotEqual:            "NotEqual",
	KindEqual:               "Equal",
	KindRightArrow:          "RightArrow",
	KindEllipsis:            "Ellipsis",
	KindDot:                 "Dot",
	KindColon:               "Colon",
	KindComma:               "Comma",
	KindSemicolon:           "Semicolon",
	KindLeftParenthesis:     "LeftParenthesis",
	KindRightParenthesis:    "RightParenthesis",
	KindLeftSquareBracket:   "LeftSquareBracket",
	KindRightSquareBracket:  "RightSquareBracket",
	KindLeftBrace:           "LeftBrace",
	KindRightBrace:          "RightBrace",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsOperator reports whether k is a fixed operator or punctuation kind.
func (k Kind) IsOperator() bool {
	return k >= KindPlus
}

// IsStructural reports whether k carries block or line structure rather
// than source text of its own choosing.
func (k Kind) IsStructural() bool {
	switch k {
	case KindEndMarker, KindIndent, KindDedent, KindNewlineLogical, KindNewlineContinuation:
		return true
	}
	return false
}

// IsLiteral reports whether k is one of the literal-carrying kinds.
func (k Kind) IsLiteral() bool {
	switch k {
	case KindName, KindNumber, KindString, KindComment:
		return true
	}
	return false
}

// Token is a single lexical unit. Text is the exact source slice the token
// matched, byte for byte. Value is the semantic form of the token: for Name
// tokens it is the NFKC-normalized identifier, for every other kind it
// equals Text. Lead holds the intertoken blanks that preceded the token, so
// that concatenating Lead+Text across a whole stream reproduces the source
// exactly. Start and End are byte offsets into the source; Lead occupies
// the bytes immediately before Start.
type Token struct {
	Kind  Kind
	Text  string
	Value string
	Lead  string
	Start int
	End   int
}

// simpleTokens maps fixed spellings to kinds. Order matters: an entry must
// come before any entry that is one of its own proper prefixes, so the
// first match is always the longest.
var simpleTokens = [...]struct {
	text string
	kind Kind
}{
	{"\\\r\n", KindNewlineContinuation},
	{"\\\n", KindNewlineContinuation},
	{">>=", KindRightShiftEqual},
	{"<<=", KindLeftShiftEqual},
	{"//=", KindDoubleSlashEqual},
	{"**=", KindDoubleStarEqual},
	{"...", KindEllipsis},
	{"!=", KindNotEqual},
	{"&=", KindAmpersandEqual},
	{"@=", KindAtEqual},
	{"^=", KindCircumflexEqual},
	{"%=", KindPercentEqual},
	{"+=", KindPlusEqual},
	{"|=", KindVerticalBarEqual},
	{"==", KindDoubleEqual},
	{"-=", KindMinusEqual},
	{"->", KindRightArrow},
	{">>", KindRightShift},
	{">=", KindGreaterEqual},
	{"<<", KindLeftShift},
	{"<=", KindLessEqual},
	{"//", KindDoubleSlash},
	{"/=", KindSlashEqual},
	{"**", KindDoubleStar},
	{"*=", KindStarEqual},
	{":", KindColon},
	{",", KindComma},
	{";", KindSemicolon},
	{"~", KindTilde},
	{"&", KindAmpersand},
	{"@", KindAt},
	{"^", KindCircumflex},
	{"%", KindPercent},
	{"+", KindPlus},
	{"|", KindVerticalBar},
	{"=", KindEqual},
	{"-", KindMinus},
	{">", KindGreater},
	{"<", KindLess},
	{"/", KindSlash},
	{"*", KindStar},
	{".", KindDot},
	{"(", KindLeftParenthesis},
	{"[", KindLeftSquareBracket},
	{"{", KindLeftBrace},
	{")", KindRightParenthesis},
	{"]", KindRightSquareBracket},
	{"}", KindRightBrace},
}
