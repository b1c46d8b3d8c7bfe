package audio

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Rupeshkotha/Sign-language-generator/pkg/model"
)

// fakeResolver implémente StreamResolver avec des réponses scriptées.
type fakeResolver struct {
	info       StreamInfo
	data       []byte
	probeErr   error
	fetchErr   error
	probeCalls int
	fetchCalls int
}

func (f *fakeResolver) Probe(ctx context.Context, id model.VideoID) (StreamInfo, error) {
	f.probeCalls++
	if f.probeErr != nil {
		return StreamInfo{}, f.probeErr
	}
	return f.info, nil
}

func (f *fakeResolver) Fetch(ctx context.Context, id model.VideoID) ([]byte, error) {
	f.fetchCalls++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.data, nil
}

// fakeRecognizer retourne une réponse par chunk, dans l'ordre des appels.
type fakeRecognizer struct {
	texts []string
	errs  []error
	calls int
}

func (f *fakeRecognizer) Recognize(ctx context.Context, chunk []byte) (string, error) {
	i := f.calls
	f.calls++
	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.texts) {
		return f.texts[i], nil
	}
	return "", ErrNoSpeech
}

func newTestExtractor(r StreamResolver, rec Recognizer) *Extractor {
	e := NewExtractor(r, rec, nil)
	e.ChunkTimeout = time.Second
	return e
}

func TestExtract_SingleChunkEvenDistribution(t *testing.T) {
	// un seul chunk de 5s contenant 5 mots -> timestamps 0,1,2,3,4
	res := &fakeResolver{
		info: StreamInfo{DurationSeconds: 5},
		data: make([]byte, 100),
	}
	rec := &fakeRecognizer{texts: []string{"one two three four five"}}
	e := newTestExtractor(res, rec)

	occs, err := e.Extract(context.Background(), "vid00000001")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	wantTs := []float64{0.0, 1.0, 2.0, 3.0, 4.0}
	if len(occs) != len(wantTs) {
		t.Fatalf("%d occurrences; want %d : %#v", len(occs), len(wantTs), occs)
	}
	for i, occ := range occs {
		if occ.Timestamp != wantTs[i] {
			t.Errorf("occ %d timestamp = %f; want %f", i, occ.Timestamp, wantTs[i])
		}
		if occ.Source != model.SourceAudio {
			t.Errorf("occ %d source = %q; want audio", i, occ.Source)
		}
	}
}

func TestExtract_ChunkFailureAdvancesOffset(t *testing.T) {
	// 3 chunks de 5s ; le chunk du milieu échoue, les mots du troisième
	// doivent démarrer à 10s exactement et les autres chunks sont intacts.
	res := &fakeResolver{
		info: StreamInfo{DurationSeconds: 15},
		data: make([]byte, 300),
	}
	rec := &fakeRecognizer{
		texts: []string{"first words", "", "last words"},
		errs:  []error{nil, ErrNoSpeech, nil},
	}
	e := newTestExtractor(res, rec)

	occs, err := e.Extract(context.Background(), "vid00000001")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if rec.calls != 3 {
		t.Fatalf("recognizer appelé %d fois; want 3", rec.calls)
	}
	if len(occs) != 4 {
		t.Fatalf("%d occurrences; want 4 : %#v", len(occs), occs)
	}
	// chunk 0 : 2 mots à 0.0 et 2.5
	if occs[0].Timestamp != 0.0 || occs[1].Timestamp != 2.5 {
		t.Errorf("chunk 0 timestamps = %f, %f; want 0.0, 2.5", occs[0].Timestamp, occs[1].Timestamp)
	}
	// chunk 2 : démarre à 10.0 malgré l'échec du chunk 1
	if occs[2].Timestamp != 10.0 || occs[3].Timestamp != 12.5 {
		t.Errorf("chunk 2 timestamps = %f, %f; want 10.0, 12.5", occs[2].Timestamp, occs[3].Timestamp)
	}
}

func TestExtract_DurationGateBeforeFetch(t *testing.T) {
	res := &fakeResolver{
		info: StreamInfo{DurationSeconds: 4000},
		data: make([]byte, 10),
	}
	rec := &fakeRecognizer{}
	e := newTestExtractor(res, rec)
	e.MaxVideoDuration = 3600 * time.Second

	_, err := e.Extract(context.Background(), "vid00000001")
	if !errors.Is(err, ErrVideoTooLong) {
		t.Fatalf("err = %v; want ErrVideoTooLong", err)
	}
	if res.fetchCalls != 0 {
		t.Fatalf("Fetch appelé %d fois; want 0 (aucun octet avant la vérification de durée)", res.fetchCalls)
	}
	if rec.calls != 0 {
		t.Fatalf("recognizer appelé %d fois; want 0", rec.calls)
	}
}

func TestExtract_NoAudioStream(t *testing.T) {
	res := &fakeResolver{probeErr: ErrNoAudioStream}
	e := newTestExtractor(res, &fakeRecognizer{})

	_, err := e.Extract(context.Background(), "vid00000001")
	if !errors.Is(err, ErrNoAudioStream) {
		t.Fatalf("err = %v; want ErrNoAudioStream", err)
	}
}

func TestExtractWithInfo_ReusesProvidedInfo(t *testing.T) {
	// les informations de piste sont fournies par l'appelant : le resolver ne
	// doit pas être interrogé une seconde fois
	res := &fakeResolver{data: make([]byte, 100)}
	rec := &fakeRecognizer{texts: []string{"one two three four five"}}
	e := newTestExtractor(res, rec)

	occs, err := e.ExtractWithInfo(context.Background(), "vid00000001", StreamInfo{DurationSeconds: 5})
	if err != nil {
		t.Fatalf("ExtractWithInfo: %v", err)
	}
	if res.probeCalls != 0 {
		t.Fatalf("Probe appelé %d fois; want 0 (informations déjà fournies)", res.probeCalls)
	}
	if res.fetchCalls != 1 {
		t.Fatalf("Fetch appelé %d fois; want 1", res.fetchCalls)
	}
	if len(occs) != 5 {
		t.Fatalf("%d occurrences; want 5 : %#v", len(occs), occs)
	}
}

func TestExtractWithInfo_DurationGateStillApplies(t *testing.T) {
	res := &fakeResolver{data: make([]byte, 10)}
	e := newTestExtractor(res, &fakeRecognizer{})
	e.MaxVideoDuration = 3600 * time.Second

	_, err := e.ExtractWithInfo(context.Background(), "vid00000001", StreamInfo{DurationSeconds: 4000})
	if !errors.Is(err, ErrVideoTooLong) {
		t.Fatalf("err = %v; want ErrVideoTooLong", err)
	}
	if res.fetchCalls != 0 {
		t.Fatalf("Fetch appelé %d fois; want 0", res.fetchCalls)
	}
}

func TestExtract_AllChunksFailYieldsEmpty(t *testing.T) {
	res := &fakeResolver{
		info: StreamInfo{DurationSeconds: 10},
		data: make([]byte, 100),
	}
	rec := &fakeRecognizer{errs: []error{ErrNoSpeech, ErrNoSpeech}}
	e := newTestExtractor(res, rec)

	occs, err := e.Extract(context.Background(), "vid00000001")
	if err != nil {
		t.Fatalf("Extract: %v (les échecs de chunks ne sont jamais fatals)", err)
	}
	if len(occs) != 0 {
		t.Fatalf("%d occurrences; want 0", len(occs))
	}
}
