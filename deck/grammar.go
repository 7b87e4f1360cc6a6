package deck

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// File is the parsed form of a deck definition.
type File struct {
	Pos     lexer.Position
	Name    string   `"deck" @String`
	Entries []*Entry `@@*`
}

type Entry struct {
	Card    *CardDef `  @@`
	Texture *Asset   `| "texture" @@`
	Sound   *Asset   `| "sound" @@`
}

type CardDef struct {
	Pos    lexer.Position
	Name   string   `"card" @(Ident | String) "{"`
	Fields []*Field `@@* "}"`
}

type Field struct {
	Pos   lexer.Position
	Key   string `@("texture" | "data")`
	Value string `@String`
}

type Asset struct {
	Pos      lexer.Position
	Location string `@String`
}

type Parser struct {
	parser *participle.Parser[File]
}

func NewParser() *Parser {
	parser := participle.MustBuild[File](
		participle.Lexer(lexer.MustSimple([]lexer.SimpleRule{
			{"Comment", `#[^\n]*`},
			{"String", `"(\\.|[^"\\])*"`},
			{"Ident", `[a-zA-Z_][\w-]*`},
			{"Punct", `[{}]`},
			{"Whitespace", `\s+`},
		})),
		participle.Elide("Comment", "Whitespace"),
		participle.Unquote("String"),
		participle.UseLookahead(2),
	)
	return &Parser{parser}
}

func (p *Parser) ParseString(name, txt string) (*File, error) {
	return p.parser.ParseString(name, txt)
}
