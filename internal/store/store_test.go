package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"github.com/techfolio/portfolio-api/pkg/metrics"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalizeRenamesIdentifier(t *testing.T) {
	oid := primitive.NewObjectID()
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	raw := map[string]interface{}{
		"_id":        oid,
		"name":       "Max Mustermann",
		"created_at": primitive.NewDateTimeFromTime(ts),
	}

	doc := Normalize(raw)
	require.Equal(t, oid.Hex(), doc[IDField])
	require.NotContains(t, doc, EngineIDField)
	require.Equal(t, ts, doc[CreatedAtField])
	require.Contains(t, raw, EngineIDField, "input must not be modified")
}

func TestNormalizeWithoutIdentifier(t *testing.T) {
	doc := Normalize(map[string]interface{}{"name": "x"})
	require.NotContains(t, doc, IDField)
	require.Equal(t, "", doc.ID())
}

func TestToRecordUsesBSONTags(t *testing.T) {
	type sample struct {
		Title string   `bson:"title"`
		Tags  []string `bson:"tags"`
		Link  *string  `bson:"link,omitempty"`
	}
	rec, err := ToRecord(sample{Title: "IoT Sensor Node", Tags: []string{"PCB"}})
	require.NoError(t, err)
	require.Equal(t, "IoT Sensor Node", rec["title"])
	require.NotContains(t, rec, "link")
	require.Contains(t, rec, "tags")
}

type failingStore struct{ *MemoryStore }

func (f *failingStore) Create(ctx context.Context, collection string, record map[string]interface{}) (Document, error) {
	return nil, errors.New("down")
}

func TestInstrumentCountsCreatesAndFailures(t *testing.T) {
	ok := Instrument(NewMemoryStore())
	before := testutil.ToFloat64(metrics.DocumentsCreated.WithLabelValues("instrumented_skill"))
	_, err := ok.Create(context.Background(), "instrumented_skill", map[string]interface{}{"name": "x"})
	require.NoError(t, err)
	require.Equal(t, before+1, testutil.ToFloat64(metrics.DocumentsCreated.WithLabelValues("instrumented_skill")))

	bad := Instrument(&failingStore{MemoryStore: NewMemoryStore()})
	errBefore := testutil.ToFloat64(metrics.StorageErrors.WithLabelValues("create"))
	_, err = bad.Create(context.Background(), "instrumented_skill", nil)
	require.Error(t, err)
	require.Equal(t, errBefore+1, testutil.ToFloat64(metrics.StorageErrors.WithLabelValues("create")))
}

func TestNormalizeFlattensEngineTypes(t *testing.T) {
	raw := map[string]interface{}{
		"_id":     "plain-string-id",
		"socials": primitive.D{{Key: "github", Value: "https://github.com/"}},
		"tags":    primitive.A{"PCB", primitive.M{"nested": true}},
	}
	doc := Normalize(raw)
	require.Equal(t, "plain-string-id", doc.ID())
	require.Equal(t, map[string]interface{}{"github": "https://github.com/"}, doc["socials"])
	require.Equal(t, []interface{}{"PCB", map[string]interface{}{"nested": true}}, doc["tags"])
}

func TestCeilMillis(t *testing.T) {
	exact := time.Date(2024, 5, 1, 12, 0, 0, 7*int(time.Millisecond), time.UTC)
	require.Equal(t, exact, ceilMillis(exact))

	inBetween := exact.Add(250 * time.Microsecond)
	got := ceilMillis(inBetween)
	require.Equal(t, exact.Add(time.Millisecond), got)
	require.False(t, got.Before(inBetween))
}
