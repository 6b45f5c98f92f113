package model_test

import (
	"encoding/json"
	"testing"

	"github.com/okian/fairdraw/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestResultWireShape(t *testing.T) {
	Convey("Given a draw result", t, func() {
		result := model.Result{
			Recipient:         model.Participant{Username: "bob", UUID: "u2", TxID: "a"},
			WinnerIndex:       0,
			TotalParticipants: 2,
			Seed:              "bob:u2|alice:u1_20250701120000000_slug123",
			HashChain:         model.HashChain{Stage1: "aa", Stage2: "bb"},
			Timestamp:         "2025-07-01T12:00:00.000Z",
			Version:           model.ResultVersion,
		}

		Convey("When encoding to JSON", func() {
			data, err := json.Marshal(result)

			Convey("Then the field names match the published wire contract", func() {
				So(err, ShouldBeNil)

				var decoded map[string]json.RawMessage
				So(json.Unmarshal(data, &decoded), ShouldBeNil)
				for _, field := range []string{"recipient", "winnerIndex", "totalParticipants", "seed", "hashChain", "timestamp", "version"} {
					So(decoded, ShouldContainKey, field)
				}

				var chain map[string]string
				So(json.Unmarshal(decoded["hashChain"], &chain), ShouldBeNil)
				So(chain["stage1"], ShouldEqual, "aa")
				So(chain["stage2"], ShouldEqual, "bb")

				var recipient map[string]string
				So(json.Unmarshal(decoded["recipient"], &recipient), ShouldBeNil)
				So(recipient["username"], ShouldEqual, "bob")
				So(recipient["uuid"], ShouldEqual, "u2")
				So(recipient["txId"], ShouldEqual, "a")
			})
		})

		Convey("When round-tripping through JSON", func() {
			data, err := json.Marshal(result)
			So(err, ShouldBeNil)

			var decoded model.Result
			So(json.Unmarshal(data, &decoded), ShouldBeNil)
			So(decoded, ShouldResemble, result)
		})
	})
}
