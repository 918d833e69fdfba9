package export

import (
	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/puckboard/league-engine/internal/usecase"
)

// Encode serializes any report payload through a pooled buffer and hands
// back a detached copy the caller owns.
func Encode(payload any) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		return nil, crerr.Wrap(err, "encode report payload")
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

// EncodeReport serializes an assembled report.
func EncodeReport(report Report) ([]byte, error) {
	return Encode(report)
}

// EncodeLeagueData serializes a raw snapshot without report assembly, for
// debugging and fixture capture.
func EncodeLeagueData(data *usecase.LeagueData) ([]byte, error) {
	if data == nil {
		return nil, crerr.New("league data is nil")
	}
	return Encode(data)
}
