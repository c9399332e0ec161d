package scan

import (
	"time"

	"stock-check/core/identifier"
	"stock-check/core/register"
	"stock-check/core/state"
)

// Match normalizes raw and resolves it against the register: serial number
// first, then asset tag when the register carries that column. A nil record
// with a nil error means the item is not in the register.
func Match(raw string, idx *register.Index) (*register.Record, error) {
	key, err := identifier.Normalize(raw)
	if err != nil {
		return nil, err
	}
	if idx == nil {
		return nil, nil
	}

	if rec, ok := idx.FindBySerial(key); ok {
		return &rec, nil
	}
	if idx.HasAssetTags() {
		if rec, ok := idx.FindByAssetTag(key); ok {
			return &rec, nil
		}
	}
	return nil, nil
}

// Classify builds the Outcome for a scan. MatchedSerial is always the
// register's own serial for found items, even when the operator scanned an
// asset tag.
func Classify(raw string, match *register.Record, at time.Time) Outcome {
	if match == nil {
		return Outcome{
			RawInput:      raw,
			MatchedSerial: identifier.Canonical(raw),
			Found:         false,
			State:         state.Unknown,
			Timestamp:     at,
		}
	}

	out := Outcome{
		RawInput:           raw,
		MatchedSerial:      match.Serial,
		Found:              true,
		State:              match.State,
		RequiresAdjustment: match.State.RequiresAdjustment(),
		AssetTag:           match.AssetTag,
		Timestamp:          at,
	}
	if out.RequiresAdjustment {
		out.Identity = &Identity{
			Hostname: match.Hostname,
			LastUser: match.LastUser,
		}
	}
	return out
}
