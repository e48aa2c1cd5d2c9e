package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"clarion/internal/lsp"
)

const lsName = "clarion" // Name identifier for the language server

var handler protocol.Handler // Protocol handler instance (wired up below)

func main() {
	// Configure debug logging (1 = debug level, nil = default logger)
	commonlog.Configure(1, nil)

	clarionHandler := lsp.NewClarionHandler()

	// Wire up the handler with specific LSP method implementations
	handler = protocol.Handler{
		Initialize:             clarionHandler.Initialize,
		Initialized:            clarionHandler.Initialized,
		Shutdown:               clarionHandler.Shutdown,
		SetTrace:               clarionHandler.SetTrace,
		TextDocumentDidOpen:    clarionHandler.TextDocumentDidOpen,
		TextDocumentDidClose:   clarionHandler.TextDocumentDidClose,
		TextDocumentDidChange:  clarionHandler.TextDocumentDidChange,
		TextDocumentCompletion: clarionHandler.TextDocumentCompletion,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting Clarion LSP server...")

	// Serve over standard input/output, the transport editors expect
	err := s.RunStdio()
	if err != nil {
		log.Println("Error starting Clarion LSP server:", err)
		os.Exit(1)
	}
}
