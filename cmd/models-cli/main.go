package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Slapmytop/cherrymusic/pkg/modelfile"
	"github.com/Slapmytop/cherrymusic/pkg/models"
)

func main() {
	file := flag.String("file", "models.yaml", "YAML model document to declare")
	typeName := flag.String("type", "", "type to instantiate (lists registered types if empty)")
	output := flag.String("output", "", "output file (stdout if empty)")
	var overrides fieldValues
	flag.Var(&overrides, "set", "field override as name=value (repeatable)")
	flag.Parse()

	warnLog := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	reg := models.NewRegistry(models.WithLogger(warnLog))

	if _, err := modelfile.DeclareFile(reg, *file); err != nil {
		log.Fatalf("Failed to declare models: %v", err)
	}

	var payload any
	if *typeName == "" {
		payload = reg.List()
	} else {
		typ, err := reg.Get(*typeName)
		if err != nil {
			log.Fatalf("Failed to resolve type: %v", err)
		}
		payload = typ.New(overrides.values).AsDict()
	}

	rendered, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		log.Fatalf("Failed to render output: %v", err)
	}
	rendered = append(rendered, '\n')

	if *output != "" {
		if err := os.WriteFile(*output, rendered, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Output written to %s\n", *output)
	} else {
		fmt.Print(string(rendered))
	}
}

// fieldValues collects repeated -set name=value flags.
type fieldValues struct {
	values map[string]any
}

func (f *fieldValues) String() string {
	pairs := make([]string, 0, len(f.values))
	for name, value := range f.values {
		pairs = append(pairs, fmt.Sprintf("%s=%v", name, value))
	}
	return strings.Join(pairs, ",")
}

func (f *fieldValues) Set(raw string) error {
	name, value, ok := strings.Cut(raw, "=")
	if !ok || strings.TrimSpace(name) == "" {
		return fmt.Errorf("expected name=value, got %q", raw)
	}
	if f.values == nil {
		f.values = make(map[string]any)
	}
	f.values[strings.TrimSpace(name)] = value
	return nil
}
