package generator

import (
	"context"
	"fmt"
	"os"
)

// StaticGenerator replays a fixed reply. It backs offline runs that feed a
// recorded optimizer answer through the normal parsing path.
type StaticGenerator struct {
	reply string
}

func NewStaticGenerator(reply string) *StaticGenerator {
	return &StaticGenerator{reply: reply}
}

// NewStaticGeneratorFromFile loads the reply from disk.
func NewStaticGeneratorFromFile(path string) (*StaticGenerator, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("static generator: read %q: %w", path, err)
	}
	return &StaticGenerator{reply: string(b)}, nil
}

func (g *StaticGenerator) Generate(ctx context.Context, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return g.reply, nil
}
