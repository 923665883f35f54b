package lsp

import (
	"context"
	"net/url"
	"strings"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	fern "github.com/fernlang/fern"
)

// publishDiagnostics converts a document's parse diagnostics to LSP format
// and publishes them.
func (s *Server) publishDiagnostics(ctx context.Context, doc *Document) {
	diagnostics := make([]protocol.Diagnostic, 0, len(doc.Diagnostics))

	for _, d := range doc.Diagnostics {
		diagnostics = append(diagnostics, convertDiagnostic(d))
	}

	s.logger.Debug("publishDiagnostics",
		zap.String("uri", string(doc.URI)),
		zap.Int("count", len(diagnostics)))

	err := s.client.PublishDiagnostics(ctx, &protocol.PublishDiagnosticsParams{
		URI:         doc.URI,
		Version:     uint32(doc.Version), //nolint:gosec // LSP version numbers are always non-negative
		Diagnostics: diagnostics,
	})
	if err != nil {
		s.logger.Error("publishDiagnostics: RPC failed", zap.Error(err))
	}
}

// convertDiagnostic converts a fern.Diagnostic to an LSP protocol.Diagnostic.
// SourceLoc is a single point, not a range, so the diagnostic is reported as
// a zero-width range at that position.
func convertDiagnostic(d fern.Diagnostic) protocol.Diagnostic {
	pos := protocol.Position{
		Line:      clampUint32(d.Loc.Line - 1),
		Character: clampUint32(d.Loc.Column - 1),
	}

	return protocol.Diagnostic{
		Range:    protocol.Range{Start: pos, End: pos},
		Severity: convertSeverity(d.Severity),
		Source:   "fern",
		Message:  d.Message,
	}
}

func convertSeverity(sev string) protocol.DiagnosticSeverity {
	switch sev {
	case "warning":
		return protocol.DiagnosticSeverityWarning
	case "information":
		return protocol.DiagnosticSeverityInformation
	case "hint":
		return protocol.DiagnosticSeverityHint
	default:
		return protocol.DiagnosticSeverityError
	}
}

func clampUint32(n int) uint32 {
	if n < 0 {
		return 0
	}

	return uint32(n)
}

// URIToPath converts a file:// LSP document URI to a filesystem path. Any
// other scheme is returned unchanged, matching what editors send for
// untitled/unsaved buffers.
func URIToPath(uri protocol.DocumentURI) string {
	s := string(uri)
	if !strings.HasPrefix(s, "file://") {
		return s
	}

	u, err := url.Parse(s)
	if err != nil {
		return strings.TrimPrefix(s, "file://")
	}

	return u.Path
}
