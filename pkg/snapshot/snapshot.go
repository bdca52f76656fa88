package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// UpdateEnv rewrites every snapshot when set to a non-empty value
const UpdateEnv = "UPDATE_SNAPSHOTS"

var (
	mu        sync.Mutex
	funcCount = make(map[string]int)
)

// ValidateSnapshot compares the JSON encoding of obj against testdata/<func>-<n>.json,
// where <func> is the calling test (skipping depth extra frames) and n counts the calls
// made from it. A missing snapshot is written and the check passes.
func ValidateSnapshot(t *testing.T, obj interface{}, depth int, msgAndArgs ...interface{}) {
	t.Helper()

	pc, _, _, _ := runtime.Caller(1 + depth)
	funcName := filepath.Base(runtime.FuncForPC(pc).Name())

	mu.Lock()
	call := funcCount[funcName]
	funcCount[funcName] = call + 1
	mu.Unlock()

	filename := filepath.Join("testdata", fmt.Sprintf("%s-%d.json", funcName, call))

	objJSON, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		t.Fatalf("could not encode snapshot: %v", err)
	}

	expects, err := os.ReadFile(filename)
	if os.IsNotExist(err) || os.Getenv(UpdateEnv) != "" {
		if err := write(filename, objJSON); err != nil {
			t.Fatalf("could not write snapshot %s: %v", filename, err)
		}

		return
	} else if err != nil {
		t.Fatalf("could not read snapshot %s: %v", filename, err)
	}

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(string(objJSON), "\n"), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
	}
}

func write(filename string, b []byte) error {
	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return err
	}

	return os.WriteFile(filename, append(b, '\n'), 0o644)
}
