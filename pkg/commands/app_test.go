package commands_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/benbjohnson/clock"
	"github.com/spf13/afero"

	"github.com/wuxler/imgref/pkg/commands"
)

type testApp struct {
	*commands.App
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	clock  *clock.Mock
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	ta := &testApp{
		App:    commands.New(),
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
		clock:  clock.NewMock(),
	}
	ta.Fs = afero.NewMemMapFs()
	ta.Clock = ta.clock
	ta.Stdin = strings.NewReader("")
	ta.Stdout = ta.stdout
	ta.Stderr = ta.stderr
	return ta
}

func (ta *testApp) run(args ...string) error {
	return ta.ToCLI().Run(context.Background(), append([]string{"imgref"}, args...))
}

func (ta *testApp) writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := afero.WriteFile(ta.Fs, path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
