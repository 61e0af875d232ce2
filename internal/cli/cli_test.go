package cli

import (
	"bytes"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/callshot/internal/api"
	"github.com/ytget/callshot/internal/config"
	"github.com/ytget/callshot/internal/server"
)

func TestRootCmd_Subcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range RootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "health", "styles", "generate"} {
		assert.True(t, names[want], "missing %s command", want)
	}
}

func TestPrintResult(t *testing.T) {
	t.Cleanup(func() { formatFlag = "json" })
	resp := &api.HealthResponse{Status: "healthy", Service: "photo-generator"}
	text := func(w io.Writer) { io.WriteString(w, "photo-generator: healthy\n") }

	var buf bytes.Buffer
	formatFlag = "json"
	printResult(&buf, resp, text)
	assert.JSONEq(t, `{"status":"healthy","service":"photo-generator"}`, buf.String())

	buf.Reset()
	formatFlag = "text"
	printResult(&buf, resp, text)
	assert.Equal(t, "photo-generator: healthy\n", buf.String())
}

func TestQueryCommandsAgainstServer(t *testing.T) {
	srv := httptest.NewServer(server.NewRouter(config.ServerConfig{}))
	defer srv.Close()

	for _, args := range [][]string{
		{"health", "--url", srv.URL},
		{"styles", "--url", srv.URL, "--format", "text"},
		{"generate", "telegram calls", "--url", srv.URL, "--width", "2000"},
	} {
		RootCmd.SetArgs(args)
		require.NoError(t, RootCmd.Execute(), "%v", args)
	}
	formatFlag = "json"
}
