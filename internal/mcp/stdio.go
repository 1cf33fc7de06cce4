package mcp

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/evyataryagoni/geoip-api/internal/logger"
)

// StdioServer runs the MCP protocol over newline-delimited JSON-RPC on a
// reader/writer pair, for local clients that spawn the server as a child
// process. There is no caller IP on this transport, so geoip_lookup_self
// always fails with STDIO_NO_CALLER_IP.
type StdioServer struct {
	dispatcher *Dispatcher
	in         io.Reader
	out        io.Writer
	logger     *logger.Logger
}

// NewStdioServer creates a stdio transport over the given dispatcher.
// Logs must go to stderr on this transport; stdout carries the protocol.
func NewStdioServer(dispatcher *Dispatcher, in io.Reader, out io.Writer, log *logger.Logger) *StdioServer {
	if log == nil {
		log = logger.NewDefault()
	}
	return &StdioServer{
		dispatcher: dispatcher,
		in:         in,
		out:        out,
		logger:     log.WithComponent("MCPStdioServer"),
	}
}

// Run reads requests line by line until EOF. Each line is one JSON-RPC
// request; each response is written as one line.
func (s *StdioServer) Run() error {
	scanner := bufio.NewScanner(s.in)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	writer := bufio.NewWriter(s.out)
	encoder := json.NewEncoder(writer)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			s.logger.Warn().Err(err).Msg("Malformed request line")
			if err := s.write(encoder, writer, errorResponse(nil, CodeInvalidRequest, "Malformed JSON-RPC request: "+err.Error())); err != nil {
				return err
			}
			continue
		}

		resp := s.dispatcher.Handle(req, "")
		if err := s.write(encoder, writer, resp); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (s *StdioServer) write(encoder *json.Encoder, writer *bufio.Writer, resp Response) error {
	if err := encoder.Encode(resp); err != nil {
		return err
	}
	return writer.Flush()
}
