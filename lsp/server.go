// Package lsp serves the Java dialect over the Language Server Protocol:
// open documents are parsed under a feature set, parse errors are published
// as diagnostics and whole-document formatting re-renders sources written in
// base syntax.
package lsp

import (
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/dhamidi/jpp/feature"
	"github.com/dhamidi/jpp/format"
	"github.com/dhamidi/jpp/java/ast"
	"github.com/dhamidi/jpp/java/parser"
	"github.com/dhamidi/jpp/java/token"
)

const lsName = "jpp"

var log = commonlog.GetLogger("jpp.lsp")

type Server struct {
	handler  protocol.Handler
	server   *server.Server
	version  string
	features *feature.Set

	mu        sync.Mutex
	documents map[protocol.DocumentUri]string
}

// NewServer returns a server that parses documents under features. A nil
// set selects the registry defaults.
func NewServer(version string, features *feature.Set) *Server {
	if features == nil {
		features = feature.Default.Defaults()
	}
	ls := &Server{
		version:   version,
		features:  features,
		documents: make(map[protocol.DocumentUri]string),
	}

	ls.handler = protocol.Handler{
		Initialize:             ls.initialize,
		Initialized:            ls.initialized,
		Shutdown:               ls.shutdown,
		SetTrace:               ls.setTrace,
		TextDocumentDidOpen:    ls.textDocumentDidOpen,
		TextDocumentDidChange:  ls.textDocumentDidChange,
		TextDocumentDidClose:   ls.textDocumentDidClose,
		TextDocumentFormatting: ls.textDocumentFormatting,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
	}

	if params.ClientInfo != nil {
		log.Infof("initialize from %s", params.ClientInfo.Name)
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Infof("initialized with features [%s]", ls.features)
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	log.Info("shutdown")
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	ls.store(uri, params.TextDocument.Text)
	ls.publish(ctx, uri, params.TextDocument.Text)
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	uri := params.TextDocument.URI
	change := params.ContentChanges[len(params.ContentChanges)-1]
	textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole)
	if !ok {
		log.Warningf("%s: ignoring incremental change", uri)
		return nil
	}
	ls.store(uri, textChange.Text)
	ls.publish(ctx, uri, textChange.Text)
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	ls.mu.Lock()
	delete(ls.documents, uri)
	ls.mu.Unlock()

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

// textDocumentFormatting replaces the whole document with its rendering.
// Rendering drops comments and spells every extension in base syntax, so
// documents with comments or extensions are left alone, as are documents
// that do not parse.
func (ls *Server) textDocumentFormatting(ctx *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	uri := params.TextDocument.URI
	text, ok := ls.document(uri)
	if !ok {
		return nil, nil
	}

	block, comments, err := parseDocument(uri, text, ls.features)
	if err != nil {
		log.Debugf("%s: not formatting: %s", uri, err)
		return nil, nil
	}
	if len(comments) > 0 {
		log.Debugf("%s: not formatting: document has %d comments", uri, len(comments))
		return nil, nil
	}
	base, _, err := parseDocument(uri, text, ls.features.Registry().Empty())
	if err != nil || !ast.Equal(block, base) {
		log.Debugf("%s: not formatting: document uses extensions", uri)
		return nil, nil
	}

	formatted := format.Statements(block)
	if formatted == text {
		return []protocol.TextEdit{}, nil
	}
	return []protocol.TextEdit{{
		Range:   documentRange(text),
		NewText: formatted,
	}}, nil
}

func (ls *Server) publish(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	_, err := ls.parse(uri, text)
	diagnostics := Diagnostics(err)
	log.Debugf("%s: publishing %d diagnostics", uri, len(diagnostics))
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func (ls *Server) parse(uri protocol.DocumentUri, text string) (*ast.Block, error) {
	block, _, err := parseDocument(uri, text, ls.features)
	return block, err
}

// parseDocument parses text under features and returns the comments it
// skipped along with the tree.
func parseDocument(uri protocol.DocumentUri, text string, features *feature.Set) (*ast.Block, []token.Token, error) {
	p := parser.ParseStatements(strings.NewReader(text),
		parser.WithFile(uriToPath(uri)),
		parser.WithFeatures(features),
	)
	node, err := p.Finish()
	if err != nil {
		return nil, nil, err
	}
	return node.(*ast.Block), p.Comments(), nil
}

func (ls *Server) store(uri protocol.DocumentUri, text string) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	ls.documents[uri] = text
}

func (ls *Server) document(uri protocol.DocumentUri) (string, bool) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	text, ok := ls.documents[uri]
	return text, ok
}

func uriToPath(uri string) string {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return uri
		}
		return filepath.Clean(parsed.Path)
	}
	return uri
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
