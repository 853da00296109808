package cmd

import (
	"encoding/json"
	"fmt"
)

// TokensCmd dumps the token stream of a file, one token per line, for
// debugging delimiter configurations.
type TokensCmd struct {
	File string `arg:"" help:"File to tokenize" type:"existingfile"`

	JSON bool `help:"Output a JSON array"`
}

// tokenInfo is one token in the machine-readable dump.
type tokenInfo struct {
	Line int    `json:"line"`
	Col  int    `json:"col"`
	Type string `json:"type"`
	Raw  string `json:"raw"`
}

// Run executes the tokens command.
func (c *TokensCmd) Run() error {
	doc, _, err := loadDocument(c.File, 0)
	if err != nil {
		return err
	}

	var infos []tokenInfo
	model := doc.Model()
	for li := 0; li < model.LineCount(); li++ {
		for _, tok := range model.Line(li).Tokens {
			infos = append(infos, tokenInfo{
				Line: li,
				Col:  tok.Col,
				Type: tok.Type.String(),
				Raw:  tok.Raw,
			})
		}
	}

	if c.JSON {
		out, err := json.Marshal(infos)
		if err != nil {
			return err
		}
		fmt.Println(string(out))

		return nil
	}

	for _, info := range infos {
		fmt.Printf(
			"%d:%d\t%-12s %q\n",
			info.Line,
			info.Col,
			info.Type,
			info.Raw,
		)
	}

	return nil
}
