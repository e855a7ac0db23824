package driver

import (
	"dangle/internal/diag"
	"dangle/internal/lexer"
	"dangle/internal/source"
	"dangle/internal/token"
)

// TokenizeResult carries the token stream of a single file.
type TokenizeResult struct {
	FileSet *source.FileSet
	FileID  source.FileID
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads one file and runs the lexer over it, for the tokens
// subcommand and debugging.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		return nil, err
	}

	bag := diag.NewBag(maxDiagnostics)
	stream := lexer.Tokenize(fileSet.Get(fileID), diag.BagReporter{Bag: bag})

	return &TokenizeResult{
		FileSet: fileSet,
		FileID:  fileID,
		Tokens:  stream.Tokens(),
		Bag:     bag,
	}, nil
}
