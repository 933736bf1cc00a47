package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/river-rush/internal/config"
	"github.com/vovakirdan/river-rush/internal/games/river"
)

func TestSimulateDeterministic(t *testing.T) {
	seeds := []int64{1, 2, 3, 4}

	a, err := simulate(context.Background(), river.IDClassic, seeds, 600, 4)
	if err != nil {
		t.Fatalf("simulate() error = %v", err)
	}
	b, err := simulate(context.Background(), river.IDClassic, seeds, 600, 1)
	if err != nil {
		t.Fatalf("simulate() error = %v", err)
	}

	for i := range seeds {
		if a[i].Summary.Seed != seeds[i] {
			t.Errorf("results[%d].Seed = %d, expected %d", i, a[i].Summary.Seed, seeds[i])
		}
		if a[i].Digest != b[i].Digest {
			t.Errorf("seed %d digest = %x, expected %x", seeds[i], a[i].Digest, b[i].Digest)
		}
	}
	if Fingerprint(a) != Fingerprint(b) {
		t.Errorf("Fingerprint() differs between worker counts")
	}
}

func TestSimulateTimeTrialEnds(t *testing.T) {
	res, err := simulate(context.Background(), river.IDTimeTrial, []int64{9}, 5000, 1)
	if err != nil {
		t.Fatalf("simulate() error = %v", err)
	}
	if !res[0].GameOver || res[0].Ticks != 3750 {
		t.Errorf("time trial = over %v after %d ticks, expected over after 3750", res[0].GameOver, res[0].Ticks)
	}
}

func TestSimulateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := simulate(ctx, river.IDZen, []int64{1}, 1000, 1)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("simulate() error = %v, expected context.Canceled", err)
	}
}

func TestConfigValidateCommand(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	data, err := config.Encode(config.DefaultRiverConfig(), config.FormatYAML)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if err := os.WriteFile(good, data, 0o600); err != nil {
		t.Fatal(err)
	}

	bad := filepath.Join(dir, "bad.toml")
	badDoc := "[spawn.obstacle]\nbase = 1.0\nfloor = 2.0\n\n[spawn.bands]\npower_up = 0.9\ngem = 0.9\n"
	if err := os.WriteFile(bad, []byte(badDoc), 0o600); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	configValidateCmd.SetOut(&out)
	configValidateCmd.SetErr(&out)
	defer func() {
		configValidateCmd.SetOut(nil)
		configValidateCmd.SetErr(nil)
	}()

	if err := runConfigValidate(configValidateCmd, []string{good}); err != nil {
		t.Errorf("validate(good) error = %v", err)
	}
	if !strings.Contains(out.String(), "is valid") {
		t.Errorf("validate(good) output = %q", out.String())
	}

	out.Reset()
	err = runConfigValidate(configValidateCmd, []string{bad})
	if err == nil {
		t.Fatal("validate(bad) error = nil, expected problems")
	}
	if got := strings.Count(out.String(), "  - "); got < 2 {
		t.Errorf("validate(bad) listed %d problems, expected at least 2:\n%s", got, out.String())
	}
}

func TestUnwrapAll(t *testing.T) {
	a, b, c := errors.New("a"), errors.New("b"), errors.New("c")
	got := unwrapAll(errors.Join(a, errors.Join(b, c)))
	if len(got) != 3 {
		t.Fatalf("unwrapAll() = %v, expected 3 leaves", got)
	}

	single := unwrapAll(a)
	if len(single) != 1 || single[0] != a {
		t.Errorf("unwrapAll(a) = %v, expected [a]", single)
	}
}
