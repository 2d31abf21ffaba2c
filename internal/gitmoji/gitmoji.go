// Package gitmoji replaces symbolic tags (e.g. ":bug:") in generated
// commit messages with glyphs resolved through an external lookup.
package gitmoji

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/jmillana/plz-cli/internal/executor"
)

// tagPattern matches a symbolic tag: colon, word characters, colon
var tagPattern = regexp.MustCompile(`:\w+:`)

// Resolver looks up the glyph for a tag. An empty glyph with a nil error
// means the tag has no match and should be left verbatim; a non-nil error
// means the resolver itself is unavailable, which is fatal for the run.
type Resolver interface {
	Resolve(ctx context.Context, tag string) (string, error)
}

// CLIResolver resolves tags through the gitmoji command line tool
type CLIResolver struct {
	runner executor.ProcessRunner
}

// NewCLIResolver creates a resolver backed by the given runner
func NewCLIResolver(runner executor.ProcessRunner) *CLIResolver {
	return &CLIResolver{runner: runner}
}

var _ Resolver = (*CLIResolver)(nil)

// Resolve queries the gitmoji CLI for the best-matching glyph. The first
// column of the first match wins; no output means no match.
func (r *CLIResolver) Resolve(ctx context.Context, tag string) (string, error) {
	result, err := r.runner.Run(ctx, fmt.Sprintf("gitmoji -s %s | awk '{print $1}'", tag))
	if err != nil {
		return "", fmt.Errorf("failed to execute gitmoji: %w", err)
	}
	if !result.IsSuccess() {
		return "", fmt.Errorf("gitmoji exited with status %d: %s", result.ExitCode, strings.TrimSpace(result.Stderr))
	}

	glyph := strings.TrimSpace(result.Output)
	if glyph == "" {
		return "", nil
	}
	// Only the best match is wanted when the lookup returns several
	if i := strings.IndexByte(glyph, '\n'); i >= 0 {
		glyph = glyph[:i]
	}
	return glyph, nil
}

// Substitutor rewrites tags in generated text
type Substitutor struct {
	resolver Resolver
}

// NewSubstitutor creates a substitutor using the given resolver
func NewSubstitutor(resolver Resolver) *Substitutor {
	return &Substitutor{resolver: resolver}
}

// Apply replaces every resolvable tag in text with its glyph. Each distinct
// tag is looked up exactly once and replaced globally, so a tag appearing
// twice gets the same glyph twice. Tags without a glyph are left verbatim
// and returned in skipped. Text without any tag is returned unchanged
// without invoking the resolver.
func (s *Substitutor) Apply(ctx context.Context, text string) (result string, skipped []string, err error) {
	matches := tagPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return text, nil, nil
	}

	result = text
	seen := make(map[string]bool, len(matches))
	for _, tag := range matches {
		if seen[tag] {
			continue
		}
		seen[tag] = true

		glyph, err := s.resolver.Resolve(ctx, tag)
		if err != nil {
			return "", nil, err
		}
		if glyph == "" {
			skipped = append(skipped, tag)
			continue
		}
		result = strings.ReplaceAll(result, tag, glyph)
	}

	return result, skipped, nil
}
