package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-accountforms/internal/prompt"
	"github.com/goliatone/go-accountforms/pkg/host"
)

func main() {
	categoryLabel := flag.String("category", "Retirement", "account category label")
	saved := flag.String("saved", "", "path to a previously submitted payload to resume from")
	output := flag.String("output", "", "output file for the submission JSON (stdout if empty)")
	flag.Parse()

	ctx := context.Background()
	logger := log.New(os.Stderr, "accountforms: ", 0)

	var savedData any
	if *saved != "" {
		data, err := os.ReadFile(*saved)
		if err != nil {
			log.Fatalf("Failed to read saved payload: %v", err)
		}
		savedData = data
	}

	driver := prompt.NewSurveyDriver()
	editor, err := prompt.NewEditor(driver)
	if err != nil {
		log.Fatalf("Failed to build editor: %v", err)
	}

	stdioHost := &cliHost{label: strings.TrimSpace(*categoryLabel)}
	session := host.NewSession(stdioHost,
		host.WithLogger(logger),
		host.WithConfirm(editor.Confirmer()))

	if err := session.Init(ctx, savedData); err != nil {
		log.Fatalf("Failed to initialize session: %v", err)
	}
	if err := editor.Run(ctx, session); err != nil {
		log.Fatalf("Session failed: %v", err)
	}

	if stdioHost.submitted == nil {
		fmt.Fprintln(os.Stderr, "Nothing submitted.")
		return
	}

	wire := "null"
	if stdioHost.submitted.Value != nil {
		wire = *stdioHost.submitted.Value
	}
	if *output != "" {
		if err := os.WriteFile(*output, []byte(wire), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Submission written to %s\n", *output)
	} else {
		fmt.Println(wire)
	}
}

// cliHost is a stdio stand-in for the embedding runtime: settings come from
// flags, form field lookups are empty, and outbound messages are captured or
// dropped.
type cliHost struct {
	label     string
	submitted *host.SubmitPayload
}

func (h *cliHost) WidgetSetting(name string) string {
	if name == host.SettingAccountLabel {
		return h.label
	}
	return ""
}

func (h *cliHost) FieldValue(context.Context, string) (string, error) { return "", nil }

func (h *cliHost) SendData(host.DataPayload) {}

func (h *cliHost) SendSubmit(p host.SubmitPayload) { h.submitted = &p }

func (h *cliHost) RequestFrameResize(int) {}
