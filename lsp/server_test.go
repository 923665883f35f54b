package lsp

import (
	"testing"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"
)

func TestServerAnalyzePopulatesProgramAndDiagnostics(t *testing.T) {
	t.Parallel()

	s := NewServer(nil, zap.NewNop())

	doc := &Document{
		URI:     protocol.DocumentURI("file:///tmp/main.fn"),
		Content: "let x = 1\n",
	}

	s.analyze(doc)

	if len(doc.Program) != 1 {
		t.Errorf("len(Program) = %d, want 1", len(doc.Program))
	}

	if len(doc.Diagnostics) != 0 {
		t.Errorf("Diagnostics = %v, want none for well-formed source", doc.Diagnostics)
	}
}

func TestServerAnalyzeRecordsSyntaxErrorsWithoutPanicking(t *testing.T) {
	t.Parallel()

	s := NewServer(nil, zap.NewNop())

	doc := &Document{
		URI:     protocol.DocumentURI("file:///tmp/broken.fn"),
		Content: "let = \n",
	}

	s.analyze(doc)

	if len(doc.Diagnostics) == 0 {
		t.Error("expected at least one diagnostic for malformed source")
	}
}

func TestServerGetDocumentAfterDirectInsert(t *testing.T) {
	t.Parallel()

	s := NewServer(nil, zap.NewNop())

	uri := protocol.DocumentURI("file:///tmp/main.fn")
	doc := &Document{URI: uri, Content: "let x = 1\n"}

	s.mu.Lock()
	s.documents[uri] = doc
	s.mu.Unlock()

	got, ok := s.getDocument(uri)
	if !ok {
		t.Fatal("getDocument() ok = false, want true")
	}

	if got != doc {
		t.Error("getDocument() returned a different *Document")
	}

	if _, ok := s.getDocument(protocol.DocumentURI("file:///tmp/other.fn")); ok {
		t.Error("getDocument() for an unknown URI returned ok = true")
	}
}
