package fuzztests

import (
	"context"
	"testing"

	"mpass/internal/driver"
)

func FuzzFill(f *testing.F) {
	addFillSeeds(f)
	f.Fuzz(func(t *testing.T, text string) {
		text = clampInput(text)
		res, err := driver.Fill(context.Background(), text, driver.FillRequest{
			Source:         "seeded",
			Seed:           3,
			MaxDiagnostics: 16,
		})
		if err != nil {
			if res == nil {
				t.Fatalf("%q: nil result with error %v", text, err)
			}
			return
		}
		if len(res.Fields) == 0 && res.Output != text {
			t.Fatalf("%q: text without annotations was changed to %q", text, res.Output)
		}
		for _, fld := range res.Fields {
			if fld.Value == "" {
				t.Fatalf("%q: field %s produced an empty value", text, fld.Name)
			}
		}
	})
}
