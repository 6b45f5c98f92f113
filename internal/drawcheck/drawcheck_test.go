package drawcheck_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/okian/fairdraw/internal/domain/draw"
	"github.com/okian/fairdraw/internal/domain/model"
	"github.com/okian/fairdraw/internal/drawcheck"
	. "github.com/smartystreets/goconvey/convey"
)

func mustInitLogging(t *testing.T) {
	t.Helper()
	if err := drawcheck.SetupLogging(false); err != nil {
		t.Fatalf("setup logging: %v", err)
	}
}

func referenceResult(t *testing.T) model.Result {
	t.Helper()
	result, err := draw.Run(
		[]model.Participant{
			{Username: "alice", UUID: "u1", TxID: "b"},
			{Username: "bob", UUID: "u2", TxID: "a"},
		},
		model.Metadata{
			Slug:            "slug123",
			ClosedAt:        time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
			MinParticipants: 2,
		},
		nil,
	)
	if err != nil {
		t.Fatalf("reference draw: %v", err)
	}
	return result
}

func TestCompare(t *testing.T) {
	Convey("Given a recomputed and a published result", t, func() {
		got := model.Result{
			Recipient:         model.Participant{Username: "bob", UUID: "u2", TxID: "a"},
			WinnerIndex:       0,
			TotalParticipants: 2,
			Seed:              "seed",
			HashChain:         model.HashChain{Stage1: "s1", Stage2: "s2"},
			Timestamp:         "2025-07-01T12:00:00.000Z",
			Version:           "1.0",
		}

		Convey("When they are identical", func() {
			So(drawcheck.Compare(got, got), ShouldBeEmpty)
		})

		Convey("When the seed differs", func() {
			want := got
			want.Seed = "other"
			mismatches := drawcheck.Compare(got, want)

			So(mismatches, ShouldHaveLength, 1)
			So(mismatches[0], ShouldContainSubstring, "seed")
		})

		Convey("When several fields differ", func() {
			want := got
			want.HashChain.Stage2 = "zzz"
			want.WinnerIndex = 1
			want.Recipient.Username = "alice"

			So(drawcheck.Compare(got, want), ShouldHaveLength, 3)
		})
	})
}

func TestRunSelfTest(t *testing.T) {
	mustInitLogging(t)

	Convey("Given a self-test configuration", t, func() {
		dir := t.TempDir()
		out := filepath.Join(dir, "result.json")
		config := &drawcheck.Config{
			SelfTest:     true,
			Participants: 25,
			OutputFile:   out,
		}

		Convey("When running it", func() {
			err := drawcheck.Run(context.Background(), config)

			Convey("Then it passes and writes a well-formed result", func() {
				So(err, ShouldBeNil)

				data, readErr := os.ReadFile(out)
				So(readErr, ShouldBeNil)

				var result model.Result
				So(json.Unmarshal(data, &result), ShouldBeNil)
				So(result.TotalParticipants, ShouldEqual, 25)
				So(result.WinnerIndex, ShouldBeBetweenOrEqual, 0, 24)
				So(result.HashChain.Stage1, ShouldHaveLength, 64)
				So(result.HashChain.Stage2, ShouldHaveLength, 128)
				So(result.Version, ShouldEqual, "1.0")
			})
		})
	})
}

func TestRunLive(t *testing.T) {
	mustInitLogging(t)

	snapshot := `{
		"participants": [
			{"username": "alice", "uuid": "u1", "txId": "b"},
			{"username": "bob", "uuid": "u2", "txId": "a"}
		],
		"closedAt": "2025-07-01T12:00:00.000Z",
		"minParticipants": 2,
		"slug": "slug123"
	}`

	Convey("Given a provider and a published result", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(snapshot))
		}))
		defer srv.Close()

		dir := t.TempDir()
		expectPath := filepath.Join(dir, "expected.json")
		expected := referenceResult(t)
		data, err := json.Marshal(expected)
		So(err, ShouldBeNil)
		So(os.WriteFile(expectPath, data, 0o600), ShouldBeNil)

		Convey("When the published result matches", func() {
			config := &drawcheck.Config{
				ProviderURL: srv.URL,
				Link:        "https://example.com/giveaways/slug123",
				ExpectFile:  expectPath,
				Timeout:     5 * time.Second,
			}

			So(drawcheck.Run(context.Background(), config), ShouldBeNil)
		})

		Convey("When the published result was tampered with", func() {
			tampered := expected
			tampered.WinnerIndex = 1
			tampered.Recipient = model.Participant{Username: "alice", UUID: "u1", TxID: "b"}
			data, err := json.Marshal(tampered)
			So(err, ShouldBeNil)
			tamperedPath := filepath.Join(dir, "tampered.json")
			So(os.WriteFile(tamperedPath, data, 0o600), ShouldBeNil)

			config := &drawcheck.Config{
				ProviderURL: srv.URL,
				Link:        "https://example.com/giveaways/slug123",
				ExpectFile:  tamperedPath,
				Timeout:     5 * time.Second,
			}

			err = drawcheck.Run(context.Background(), config)

			Convey("Then the check fails", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "differs")
			})
		})

		Convey("When no link is given", func() {
			err := drawcheck.Run(context.Background(), &drawcheck.Config{})
			So(err, ShouldNotBeNil)
		})
	})
}
