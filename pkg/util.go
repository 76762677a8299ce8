package pkg

import (
	"encoding/json"
	"log"
	"os"
)

// Encode marshals a message, panicking on failure. Every message type
// here marshals cleanly; an error is a programming mistake.
func Encode(m interface{}) json.RawMessage {
	data, err := json.Marshal(m)
	if err != nil {
		log.Panic(err)
	}
	return data
}

// Decode unmarshals into v and reports whether it worked. Garbage off
// the wire is logged and skipped, not fatal.
func Decode(data []byte, v interface{}) bool {
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("failed to decode message: %v", err)
		return false
	}
	return true
}

// InitLog points the global logger at a file. The TUI owns the
// terminal, so logging to stderr would wreck the screen.
func InitLog(dest, prefix string) {
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	log.SetOutput(f)
	log.SetPrefix(prefix)
}
