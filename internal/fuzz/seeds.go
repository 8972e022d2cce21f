package fuzztests

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	maxSeedBytes = 4 << 10 // 4 KiB на seed
)

var builtinSpecSeeds = []string{
	"",
	"?",
	"w",
	"i w w ###$",
	"?W r a A x z",
	"wé!W",
	"\xff\xfe",
}

// addSpecSeeds adds the built-in seeds plus testdata/specs.txt when present.
func addSpecSeeds(f *testing.F) {
	for _, s := range builtinSpecSeeds {
		f.Add(s)
	}
	path := filepath.Join("..", "..", "testdata", "specs.txt")
	// #nosec G304 -- path is a fixed repository location
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := sc.Text()
		if line == "" || strings.HasPrefix(line, "# ") {
			continue
		}
		f.Add(string(clampSeed([]byte(line))))
	}
}

// addFillSeeds adds annotated templates from testdata/fill.txt and a few
// inline ones.
func addFillSeeds(f *testing.F) {
	f.Add("")
	f.Add("no annotations here")
	f.Add("a=<<a:w>> b=<<b:##>> again=<<a:#>>")
	f.Add("<<bad:wq>>")
	f.Add("<<empty:>>")
	path := filepath.Join("..", "..", "testdata", "fill.txt")
	// #nosec G304 -- path is a fixed repository location
	if data, err := os.ReadFile(path); err == nil {
		f.Add(string(clampSeed(data)))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
