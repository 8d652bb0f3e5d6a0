package synth

import "encoding/json"

// Server is a resolved launch descriptor as stored in the host configuration
// document: the command, arguments, and environment the host application uses
// to start one capability server. Placeholders are already substituted.
type Server struct {
	// Command is the executable path or name.
	Command string `json:"command"`

	// Args are command-line arguments passed to Command.
	Args []string `json:"args,omitempty"`

	// Env contains environment variables for the server process.
	Env map[string]string `json:"env,omitempty"`

	// unknownFields stores JSON fields not explicitly defined in this struct.
	// The host application may attach its own keys to a server entry; a
	// rewrite must not drop them.
	unknownFields map[string]json.RawMessage
}

// Clone returns a deep copy of the server.
func (s *Server) Clone() *Server {
	if s == nil {
		return nil
	}
	out := &Server{
		Command: s.Command,
	}
	if s.Args != nil {
		out.Args = make([]string, len(s.Args))
		copy(out.Args, s.Args)
	}
	if s.Env != nil {
		out.Env = make(map[string]string, len(s.Env))
		for k, v := range s.Env {
			out.Env[k] = v
		}
	}
	if s.unknownFields != nil {
		out.unknownFields = make(map[string]json.RawMessage, len(s.unknownFields))
		for k, v := range s.unknownFields {
			raw := make(json.RawMessage, len(v))
			copy(raw, v)
			out.unknownFields[k] = raw
		}
	}
	return out
}

// MarshalJSON implements json.Marshaler to include unknown fields in output.
func (s *Server) MarshalJSON() ([]byte, error) {
	result := make(map[string]any)

	// Copy unknown fields first (so known fields take precedence)
	for k, v := range s.unknownFields {
		var val any
		if err := json.Unmarshal(v, &val); err != nil {
			return nil, err
		}
		result[k] = val
	}

	result["command"] = s.Command
	if len(s.Args) > 0 {
		result["args"] = s.Args
	}
	if len(s.Env) > 0 {
		result["env"] = s.Env
	}

	return json.Marshal(result)
}

// UnmarshalJSON implements json.Unmarshaler to capture unknown fields.
func (s *Server) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["command"]; ok {
		if err := json.Unmarshal(v, &s.Command); err != nil {
			return err
		}
		delete(raw, "command")
	}
	if v, ok := raw["args"]; ok {
		if err := json.Unmarshal(v, &s.Args); err != nil {
			return err
		}
		delete(raw, "args")
	}
	if v, ok := raw["env"]; ok {
		if err := json.Unmarshal(v, &s.Env); err != nil {
			return err
		}
		delete(raw, "env")
	}

	if len(raw) > 0 {
		s.unknownFields = raw
	}

	return nil
}

// Document is the host application's configuration document. Only the
// mcpServers section is managed by the wizard; every other top-level field
// is preserved verbatim across a load/save cycle.
type Document struct {
	// MCPServers maps server ids to their resolved launch descriptors.
	MCPServers map[string]*Server `json:"mcpServers"`

	// unknownFields stores JSON fields not explicitly defined in this struct.
	unknownFields map[string]json.RawMessage
}

// NewDocument creates an empty Document with an initialized server map.
func NewDocument() *Document {
	return &Document{
		MCPServers: make(map[string]*Server),
	}
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	out := NewDocument()
	for id, s := range d.MCPServers {
		out.MCPServers[id] = s.Clone()
	}
	if d.unknownFields != nil {
		out.unknownFields = make(map[string]json.RawMessage, len(d.unknownFields))
		for k, v := range d.unknownFields {
			raw := make(json.RawMessage, len(v))
			copy(raw, v)
			out.unknownFields[k] = raw
		}
	}
	return out
}

// MarshalJSON implements json.Marshaler to include unknown fields in output.
func (d *Document) MarshalJSON() ([]byte, error) {
	result := make(map[string]any)

	for k, v := range d.unknownFields {
		var val any
		if err := json.Unmarshal(v, &val); err != nil {
			return nil, err
		}
		result[k] = val
	}

	servers := d.MCPServers
	if servers == nil {
		servers = make(map[string]*Server)
	}
	result["mcpServers"] = servers

	return json.Marshal(result)
}

// UnmarshalJSON implements json.Unmarshaler to capture unknown fields.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["mcpServers"]; ok {
		if err := json.Unmarshal(v, &d.MCPServers); err != nil {
			return err
		}
		delete(raw, "mcpServers")
	}
	if d.MCPServers == nil {
		d.MCPServers = make(map[string]*Server)
	}

	if len(raw) > 0 {
		d.unknownFields = raw
	}

	return nil
}
