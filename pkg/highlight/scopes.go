package highlight

import (
	"sort"

	"github.com/alecthomas/chroma/v2"
)

// tokenScopes maps chroma token types to the TextMate scope the editor's grammars
// typically assign to the same construct. Types missing here fall back to their
// sub-category, then category.
var tokenScopes = map[chroma.TokenType]string{
	chroma.Keyword:            "keyword.control",
	chroma.KeywordConstant:    "constant.language",
	chroma.KeywordDeclaration: "storage.type",
	chroma.KeywordNamespace:   "keyword.control.import",
	chroma.KeywordPseudo:      "keyword.other",
	chroma.KeywordReserved:    "keyword.control",
	chroma.KeywordType:        "support.type",

	chroma.Name:                 "variable.other",
	chroma.NameAttribute:        "entity.other.attribute-name",
	chroma.NameBuiltin:          "support.function",
	chroma.NameBuiltinPseudo:    "variable.language",
	chroma.NameClass:            "entity.name.type.class",
	chroma.NameConstant:         "variable.other.constant",
	chroma.NameDecorator:        "entity.name.function.decorator",
	chroma.NameEntity:           "constant.character.entity",
	chroma.NameException:        "entity.name.type.exception",
	chroma.NameFunction:         "entity.name.function",
	chroma.NameFunctionMagic:    "support.function.magic",
	chroma.NameLabel:            "entity.name.label",
	chroma.NameNamespace:        "entity.name.namespace",
	chroma.NameOther:            "variable.other",
	chroma.NameProperty:         "variable.other.property",
	chroma.NameTag:              "entity.name.tag",
	chroma.NameVariable:         "variable.other",
	chroma.NameVariableClass:    "variable.other.class",
	chroma.NameVariableGlobal:   "variable.other.global",
	chroma.NameVariableInstance: "variable.other.instance",
	chroma.NameVariableMagic:    "variable.language",

	chroma.Literal:                  "constant.other",
	chroma.LiteralDate:              "constant.other.date",
	chroma.LiteralString:            "string.quoted",
	chroma.LiteralStringAffix:       "storage.type.string",
	chroma.LiteralStringBacktick:    "string.quoted.other",
	chroma.LiteralStringChar:        "string.quoted.single",
	chroma.LiteralStringDelimiter:   "punctuation.definition.string",
	chroma.LiteralStringDoc:         "string.quoted.docstring",
	chroma.LiteralStringDouble:      "string.quoted.double",
	chroma.LiteralStringEscape:      "constant.character.escape",
	chroma.LiteralStringHeredoc:     "string.unquoted.heredoc",
	chroma.LiteralStringInterpol:    "meta.interpolation",
	chroma.LiteralStringOther:       "string.other",
	chroma.LiteralStringRegex:       "string.regexp",
	chroma.LiteralStringSingle:      "string.quoted.single",
	chroma.LiteralStringSymbol:      "constant.other.symbol",
	chroma.LiteralNumber:            "constant.numeric",
	chroma.LiteralNumberBin:         "constant.numeric.binary",
	chroma.LiteralNumberFloat:       "constant.numeric.float",
	chroma.LiteralNumberHex:         "constant.numeric.hex",
	chroma.LiteralNumberInteger:     "constant.numeric.integer",
	chroma.LiteralNumberIntegerLong: "constant.numeric.integer.long",
	chroma.LiteralNumberOct:         "constant.numeric.octal",

	chroma.Operator:     "keyword.operator",
	chroma.OperatorWord: "keyword.operator.word",
	chroma.Punctuation:  "punctuation",

	chroma.Comment:            "comment",
	chroma.CommentHashbang:    "comment.line.shebang",
	chroma.CommentMultiline:   "comment.block",
	chroma.CommentSingle:      "comment.line",
	chroma.CommentSpecial:     "comment.block.documentation",
	chroma.CommentPreproc:     "meta.preprocessor",
	chroma.CommentPreprocFile: "string.quoted.other.include",

	chroma.Generic:           "markup",
	chroma.GenericDeleted:    "markup.deleted",
	chroma.GenericEmph:       "markup.italic",
	chroma.GenericError:      "invalid.illegal",
	chroma.GenericHeading:    "markup.heading",
	chroma.GenericInserted:   "markup.inserted",
	chroma.GenericStrong:     "markup.bold",
	chroma.GenericSubheading: "markup.heading.subheading",

	chroma.Error: "invalid.illegal",
}

// ScopeFor returns the TextMate scope for a chroma token type, or "" for plain
// text and whitespace.
func ScopeFor(tt chroma.TokenType) string {
	if s, ok := tokenScopes[tt]; ok {
		return s
	}
	if s, ok := tokenScopes[tt.SubCategory()]; ok {
		return s
	}
	if s, ok := tokenScopes[tt.Category()]; ok {
		return s
	}
	return ""
}

// KnownScopes returns every scope the token mapping can produce, sorted.
func KnownScopes() []string {
	seen := make(map[string]struct{}, len(tokenScopes))
	for _, s := range tokenScopes {
		seen[s] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
