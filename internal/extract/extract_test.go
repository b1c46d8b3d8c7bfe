package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/Rupeshkotha/Sign-language-generator/internal/audio"
	"github.com/Rupeshkotha/Sign-language-generator/internal/captions"
	"github.com/Rupeshkotha/Sign-language-generator/internal/videoid"
	"github.com/Rupeshkotha/Sign-language-generator/pkg/model"
)

const testURL = "https://youtu.be/dQw4w9WgXcQ"

// fakeStrategy retourne des occurrences scriptées et compte les appels.
type fakeStrategy struct {
	occs  []model.WordOccurrence
	err   error
	calls int
}

func (f *fakeStrategy) Extract(ctx context.Context, id model.VideoID) ([]model.WordOccurrence, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.occs, nil
}

// fakeProber retourne une durée fixe.
type fakeProber struct {
	duration float64
	err      error
	calls    int
}

func (f *fakeProber) Probe(ctx context.Context, id model.VideoID) (audio.StreamInfo, error) {
	f.calls++
	if f.err != nil {
		return audio.StreamInfo{}, f.err
	}
	return audio.StreamInfo{DurationSeconds: f.duration}, nil
}

// fakeInfoStrategy est une fakeStrategy sachant aussi réutiliser les
// informations de piste fournies par l'orchestrateur.
type fakeInfoStrategy struct {
	fakeStrategy
	infoCalls int
	lastInfo  audio.StreamInfo
}

func (f *fakeInfoStrategy) ExtractWithInfo(ctx context.Context, id model.VideoID, info audio.StreamInfo) ([]model.WordOccurrence, error) {
	f.infoCalls++
	f.lastInfo = info
	if f.err != nil {
		return nil, f.err
	}
	return f.occs, nil
}

func captionOccs(ts float64, tokens ...string) []model.WordOccurrence {
	out := make([]model.WordOccurrence, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, model.WordOccurrence{Token: tok, Timestamp: ts, Source: model.SourceCaption})
	}
	return out
}

func newOrch(cap, aud Strategy, prober DurationProber) *Orchestrator {
	return New(videoid.NewResolver(0), cap, aud, prober, nil, Options{})
}

func TestRun_CaptionsSufficient_AudioNeverAttempted(t *testing.T) {
	// scénario : 12 tokens bruts dont 3 doublons -> 9 uniques, pas d'audio
	cap := &fakeStrategy{occs: captionOccs(1.0,
		"hello", "world", "sign", "language", "video", "maker",
		"hello", "world", "sign", "render", "motion", "frame")}
	aud := &fakeStrategy{}
	o := newOrch(cap, aud, nil)

	res, err := o.Run(context.Background(), testURL)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if aud.calls != 0 {
		t.Fatalf("audio appelé %d fois; want 0", aud.calls)
	}
	if !res.Metrics.CaptionSuccess || res.Metrics.AudioSuccess {
		t.Errorf("metrics = %+v; want captionSuccess=true audioSuccess=false", res.Metrics)
	}
	if res.Metrics.UniqueWordCount != 9 {
		t.Errorf("uniqueWordCount = %d; want 9", res.Metrics.UniqueWordCount)
	}
	if res.Metrics.TotalWordsSeen != 12 {
		t.Errorf("totalWordsSeen = %d; want 12", res.Metrics.TotalWordsSeen)
	}
	if err := res.Validate(); err != nil {
		t.Errorf("résultat invalide : %v", err)
	}
}

func TestRun_CaptionsUnavailable_AudioFallback(t *testing.T) {
	// scénario : pas de sous-titres ; un chunk audio de 5s avec 5 mots
	cap := &fakeStrategy{err: captions.ErrNoCaptions}
	aud := &fakeStrategy{occs: []model.WordOccurrence{
		{Token: "one", Timestamp: 0.0, Source: model.SourceAudio},
		{Token: "two", Timestamp: 1.0, Source: model.SourceAudio},
		{Token: "three", Timestamp: 2.0, Source: model.SourceAudio},
		{Token: "four", Timestamp: 3.0, Source: model.SourceAudio},
		{Token: "five", Timestamp: 4.0, Source: model.SourceAudio},
	}}
	o := newOrch(cap, aud, nil)

	res, err := o.Run(context.Background(), testURL)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Metrics.CaptionSuccess || !res.Metrics.AudioSuccess {
		t.Errorf("metrics = %+v; want captionSuccess=false audioSuccess=true", res.Metrics)
	}
	wantTs := []float64{0.0, 1.0, 2.0, 3.0, 4.0}
	if len(res.Timestamps) != len(wantTs) {
		t.Fatalf("%d timestamps; want %d", len(res.Timestamps), len(wantTs))
	}
	for i, ts := range res.Timestamps {
		if ts != wantTs[i] {
			t.Errorf("timestamp %d = %f; want %f", i, ts, wantTs[i])
		}
	}
}

func TestRun_BothStrategiesEmpty_Fatal(t *testing.T) {
	cap := &fakeStrategy{err: captions.ErrNoCaptions}
	aud := &fakeStrategy{err: audio.ErrNoAudioStream}
	o := newOrch(cap, aud, nil)

	res, err := o.Run(context.Background(), testURL)
	if !errors.Is(err, ErrNoWordsExtracted) {
		t.Fatalf("err = %v; want ErrNoWordsExtracted", err)
	}
	if res != nil {
		t.Fatalf("résultat partiel retourné avec une erreur fatale : %+v", res)
	}
}

func TestRun_LowConfidenceCaptions_TriggersAudioAppend(t *testing.T) {
	// 3 mots bruts < seuil de 5 -> audio tenté, mots ajoutés APRÈS
	cap := &fakeStrategy{occs: captionOccs(0.0, "hello", "world", "sign")}
	aud := &fakeStrategy{occs: []model.WordOccurrence{
		{Token: "extra", Timestamp: 2.0, Source: model.SourceAudio},
	}}
	o := newOrch(cap, aud, nil)

	res, err := o.Run(context.Background(), testURL)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if aud.calls != 1 {
		t.Fatalf("audio appelé %d fois; want 1", aud.calls)
	}
	want := []string{"hello", "world", "sign", "extra"}
	if len(res.Words) != len(want) {
		t.Fatalf("words = %#v; want %#v", res.Words, want)
	}
	for i := range want {
		if res.Words[i] != want[i] {
			t.Errorf("word %d = %q; want %q", i, res.Words[i], want[i])
		}
	}
	if !res.Metrics.CaptionSuccess || !res.Metrics.AudioSuccess {
		t.Errorf("metrics = %+v; want les deux succès à true", res.Metrics)
	}
}

func TestRun_AudioErrorNonFatalWhenCaptionsInsufficient(t *testing.T) {
	// captions à 2 mots (sous le seuil), audio en échec : le résultat des
	// sous-titres est quand même retourné
	cap := &fakeStrategy{occs: captionOccs(0.0, "hello", "world")}
	aud := &fakeStrategy{err: audio.ErrNoAudioStream}
	o := newOrch(cap, aud, nil)

	res, err := o.Run(context.Background(), testURL)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Words) != 2 {
		t.Fatalf("%d mots; want 2", len(res.Words))
	}
	if res.Metrics.AudioSuccess {
		t.Errorf("audioSuccess = true; want false")
	}
}

func TestRun_InvalidURL(t *testing.T) {
	o := newOrch(&fakeStrategy{}, &fakeStrategy{}, nil)
	_, err := o.Run(context.Background(), "https://example.com/nope")
	if !errors.Is(err, videoid.ErrInvalidURL) {
		t.Fatalf("err = %v; want ErrInvalidURL", err)
	}
}

func TestRun_DurationGateBeforeAnyStrategy(t *testing.T) {
	cap := &fakeStrategy{occs: captionOccs(0.0, "hello", "world")}
	aud := &fakeStrategy{}
	prober := &fakeProber{duration: 4000}
	o := New(videoid.NewResolver(0), cap, aud, prober, nil, Options{MaxDurationSeconds: 3600})

	_, err := o.Run(context.Background(), testURL)
	if !errors.Is(err, audio.ErrVideoTooLong) {
		t.Fatalf("err = %v; want ErrVideoTooLong", err)
	}
	if cap.calls != 0 || aud.calls != 0 {
		t.Fatalf("stratégies appelées (captions=%d audio=%d); want 0 avant la garde de durée", cap.calls, aud.calls)
	}
}

func TestRun_ProbeFailureIsNotFatal(t *testing.T) {
	cap := &fakeStrategy{occs: captionOccs(0.0, "hello", "world", "sign", "language", "video")}
	prober := &fakeProber{err: errors.New("probe indisponible")}
	o := New(videoid.NewResolver(0), cap, &fakeStrategy{}, prober, nil, Options{})

	res, err := o.Run(context.Background(), testURL)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Words) != 5 {
		t.Fatalf("%d mots; want 5", len(res.Words))
	}
}

func TestRun_AudioReusesProbedInfo(t *testing.T) {
	// prober câblé et repli audio déclenché : les informations de piste du
	// probe initial sont transmises à la stratégie audio, qui ne doit donc
	// pas re-résoudre la vidéo (un seul probe pour toute la requête)
	cap := &fakeStrategy{err: captions.ErrNoCaptions}
	aud := &fakeInfoStrategy{fakeStrategy: fakeStrategy{occs: []model.WordOccurrence{
		{Token: "extra", Timestamp: 1.0, Source: model.SourceAudio},
	}}}
	prober := &fakeProber{duration: 120}
	o := New(videoid.NewResolver(0), cap, aud, prober, nil, Options{})

	res, err := o.Run(context.Background(), testURL)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if prober.calls != 1 {
		t.Fatalf("prober appelé %d fois; want 1", prober.calls)
	}
	if aud.infoCalls != 1 || aud.calls != 0 {
		t.Fatalf("appels audio (avec info=%d, sans=%d); want 1 et 0", aud.infoCalls, aud.calls)
	}
	if aud.lastInfo.DurationSeconds != 120 {
		t.Errorf("durée transmise = %f; want 120", aud.lastInfo.DurationSeconds)
	}
	if len(res.Words) != 1 || res.Words[0] != "extra" {
		t.Errorf("words = %#v; want [extra]", res.Words)
	}
}

func TestRun_AudioFallsBackToOwnResolveWhenProbeFailed(t *testing.T) {
	// probe en échec : la stratégie audio repasse par sa propre résolution
	cap := &fakeStrategy{err: captions.ErrNoCaptions}
	aud := &fakeInfoStrategy{fakeStrategy: fakeStrategy{occs: []model.WordOccurrence{
		{Token: "extra", Timestamp: 1.0, Source: model.SourceAudio},
	}}}
	prober := &fakeProber{err: errors.New("probe indisponible")}
	o := New(videoid.NewResolver(0), cap, aud, prober, nil, Options{})

	if _, err := o.Run(context.Background(), testURL); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if aud.infoCalls != 0 || aud.calls != 1 {
		t.Fatalf("appels audio (avec info=%d, sans=%d); want 0 et 1", aud.infoCalls, aud.calls)
	}
}

func TestRun_VideoTooLongFromAudioIsFatal(t *testing.T) {
	cap := &fakeStrategy{err: captions.ErrNoCaptions}
	aud := &fakeStrategy{err: audio.ErrVideoTooLong}
	o := newOrch(cap, aud, nil)

	_, err := o.Run(context.Background(), testURL)
	if !errors.Is(err, audio.ErrVideoTooLong) {
		t.Fatalf("err = %v; want ErrVideoTooLong", err)
	}
}

func TestRun_CapTruncatesPreservingOrder(t *testing.T) {
	// 8 mots uniques, plafond à 3 : seuls les 3 premiers restent
	cap := &fakeStrategy{occs: captionOccs(0.0,
		"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf", "hotel")}
	o := New(videoid.NewResolver(0), cap, &fakeStrategy{}, nil, nil, Options{MaxWords: 3})

	res, err := o.Run(context.Background(), testURL)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []string{"alpha", "bravo", "charlie"}
	if len(res.Words) != 3 {
		t.Fatalf("words = %#v; want %#v", res.Words, want)
	}
	for i := range want {
		if res.Words[i] != want[i] {
			t.Errorf("word %d = %q; want %q", i, res.Words[i], want[i])
		}
	}
	if res.Metrics.UniqueWordCount != 3 {
		t.Errorf("uniqueWordCount = %d; want 3 (après plafonnement)", res.Metrics.UniqueWordCount)
	}
	if err := res.Validate(); err != nil {
		t.Errorf("résultat invalide : %v", err)
	}
}

func TestRun_RejectedTokensDropTimestamps(t *testing.T) {
	// "um" et "a" sont rejetés par la normalisation : leurs timestamps
	// disparaissent avec eux
	cap := &fakeStrategy{occs: []model.WordOccurrence{
		{Token: "um", Timestamp: 0.0, Source: model.SourceCaption},
		{Token: "hello", Timestamp: 1.0, Source: model.SourceCaption},
		{Token: "a", Timestamp: 2.0, Source: model.SourceCaption},
		{Token: "world", Timestamp: 3.0, Source: model.SourceCaption},
		{Token: "sign", Timestamp: 4.0, Source: model.SourceCaption},
	}}
	o := newOrch(cap, &fakeStrategy{}, nil)

	res, err := o.Run(context.Background(), testURL)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	wantWords := []string{"hello", "world", "sign"}
	wantTs := []float64{1.0, 3.0, 4.0}
	if len(res.Words) != len(wantWords) {
		t.Fatalf("words = %#v; want %#v", res.Words, wantWords)
	}
	for i := range wantWords {
		if res.Words[i] != wantWords[i] || res.Timestamps[i] != wantTs[i] {
			t.Errorf("paire %d = (%q, %f); want (%q, %f)",
				i, res.Words[i], res.Timestamps[i], wantWords[i], wantTs[i])
		}
	}
}
