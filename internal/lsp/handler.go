package lsp

import (
	"fmt"
	"log"
	"net/url"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"clarion/grammar"
	"clarion/internal/analysis"
	"clarion/internal/types"
)

// ClarionHandler implements the LSP server handlers for the Clarion
// analyzer. Each open document is analyzed against a per-session
// in-memory database, so contracts opened earlier in the session can
// satisfy trait references from contracts opened later.
type ClarionHandler struct {
	mu      sync.RWMutex
	content map[string]string
	db      *analysis.MemoryDatabase
}

// NewClarionHandler creates and returns a new ClarionHandler instance.
func NewClarionHandler() *ClarionHandler {
	return &ClarionHandler{
		content: make(map[string]string),
		db:      analysis.NewMemoryDatabase(),
	}
}

// Initialize responds to the LSP client's initialize request and
// advertises the server's capabilities.
func (h *ClarionHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true), // notify on open/close events
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
		},
	}, nil
}

// Initialized is called after the client completes initialization.
func (h *ClarionHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("Clarion LSP Initialized")
	return nil
}

// Shutdown handles the LSP shutdown request.
func (h *ClarionHandler) Shutdown(ctx *glsp.Context) error {
	log.Println("Clarion LSP Shutdown")
	return nil
}

// SetTrace handles trace level changes (no-op).
func (h *ClarionHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor.
func (h *ClarionHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Printf("Opened file: %s\n", params.TextDocument.URI)
	return h.analyzeAndPublish(ctx, params.TextDocument.URI, params.TextDocument.Text)
}

// TextDocumentDidClose handles file close notifications from the editor.
func (h *ClarionHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Printf("Closed file: %s\n", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, path)

	return nil
}

// TextDocumentDidChange handles file change notifications from the editor.
func (h *ClarionHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Printf("Changed file: %s\n", params.TextDocument.URI)

	for _, change := range params.ContentChanges {
		if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			return h.analyzeAndPublish(ctx, params.TextDocument.URI, whole.Text)
		}
	}
	return nil
}

// TextDocumentCompletion offers native function names plus the functions
// defined in the current document.
func (h *ClarionHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (interface{}, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	names := analysis.NativeFunctionNames()
	if record := h.db.LoadContract(contractIDForPath(path)); record != nil {
		for name := range record.PublicFunctions {
			names = append(names, name)
		}
		for name := range record.ReadOnlyFunctions {
			names = append(names, name)
		}
		for name := range record.PrivateFunctions {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	items := make([]protocol.CompletionItem, 0, len(names))
	kind := protocol.CompletionItemKindFunction
	for _, name := range names {
		items = append(items, protocol.CompletionItem{
			Label: name,
			Kind:  &kind,
		})
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// analyzeAndPublish runs the full analysis pipeline on one document and
// publishes the resulting diagnostics. Analysis failures are diagnostics,
// not errors; only transport problems are returned.
func (h *ClarionHandler) analyzeAndPublish(ctx *glsp.Context, rawURI protocol.DocumentUri, text string) error {
	path, err := uriToPath(rawURI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
	}

	h.mu.Lock()
	h.content[path] = text
	h.mu.Unlock()

	var diagnostics []protocol.Diagnostic

	expressions, err := grammar.ParseContract(path, text)
	if err != nil {
		diagnostics = ConvertParseError(err)
	} else {
		// The language server never enforces a cost budget: editor
		// feedback should not disappear on large documents.
		_, checkErr := analysis.Run(contractIDForPath(path), expressions, h.db, 0)
		if checkErr != nil {
			diagnostics = ConvertCheckError(checkErr)
		}
	}

	sendDiagnosticNotification(ctx, rawURI, diagnostics)
	return nil
}

// contractIDForPath derives a contract identity from the file name, the
// same convention the CLI uses.
func contractIDForPath(path string) types.ContractIdentifier {
	base := filepath.Base(path)
	return types.LocalContract(strings.TrimSuffix(base, filepath.Ext(base)))
}

// uriToPath converts a URI to a platform-local file path.
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) -> C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
