package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/spellhound/spellhound/internal/logger"
	"github.com/spellhound/spellhound/pkg/speller"
)

var log = logger.New("ipc")

// Server handles the IPC for spell checking.
type Server struct {
	spell    *speller.Speller
	dec      *msgpack.Decoder
	enc      *msgpack.Encoder
	maxLimit int
}

// New creates a spell checking server using stdin/stdout for IPC.
func New(spell *speller.Speller, maxLimit int) *Server {
	return NewWithStreams(spell, maxLimit, os.Stdin, os.Stdout)
}

// NewWithStreams creates a server over explicit streams, mainly for tests.
func NewWithStreams(spell *speller.Speller, maxLimit int, r io.Reader, w io.Writer) *Server {
	if maxLimit < 1 {
		maxLimit = 64
	}
	return &Server{
		spell:    spell,
		dec:      msgpack.NewDecoder(r),
		enc:      msgpack.NewEncoder(w),
		maxLimit: maxLimit,
	}
}

// Start begins listening for IPC requests until the input stream closes.
func (s *Server) Start() error {
	log.Debug("Starting server.")
	s.send(StatusResponse{Status: "ready"})

	for {
		var request Request
		if err := s.dec.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(request)
	}
}

func (s *Server) handleRequest(request Request) {
	switch request.Action {
	case "check":
		s.handleCheck(request)
	case "suggest":
		s.handleSuggest(request)
	case "health":
		s.send(StatusResponse{Status: "ok"})
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown action: %s", request.Action), 400)
	}
}

func (s *Server) handleCheck(request Request) {
	if request.Word == "" {
		s.sendError(request.ID, "Missing 'w' parameter", 400)
		log.Debug("Word is empty in check request")
		return
	}
	start := time.Now()
	ok := s.spell.Spell(request.Word)
	elapsed := time.Since(start)

	s.send(CheckResponse{
		ID:        request.ID,
		Correct:   ok,
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) handleSuggest(request Request) {
	if request.Word == "" {
		s.sendError(request.ID, "Missing 'w' parameter", 400)
		log.Debug("Word is empty in suggest request")
		return
	}
	limit := request.Limit
	if limit < 1 || limit > s.maxLimit {
		limit = s.maxLimit
	}

	start := time.Now()
	suggestions := s.spell.Suggest(request.Word)
	elapsed := time.Since(start)

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	s.send(SuggestResponse{
		ID:          request.ID,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	})
}

func (s *Server) send(response interface{}) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
