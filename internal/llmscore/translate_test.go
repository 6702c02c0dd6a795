package llmscore

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParseTranslations(t *testing.T) {
	text := "```json\n" + `[{"title_kr":"제목","summary_kr":"요약"}, "요약만", 5]` + "\n```"
	got := ParseTranslations(text, 4)

	want := []Translation{
		{TitleKR: "제목", SummaryKR: "요약"},
		{SummaryKR: "요약만"},
		{},
		{},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}

	if got := ParseTranslations("not json", 2); len(got) != 2 || got[0] != (Translation{}) {
		t.Errorf("malformed response should give empty entries, got %+v", got)
	}
}

func TestTranslator_FillsKoreanFields(t *testing.T) {
	rater := &fakeRater{replies: []reply{{text: `[{"title_kr":"FDA 승인","summary_kr":"두 문장 요약."},{"title_kr":"","summary_kr":""}]`}}}
	caller, _ := testCaller(rater)

	in := candidates(2)
	out := NewTranslator(caller).TranslateSummaries(context.Background(), in)

	if out[0].TitleKR != "FDA 승인" || out[0].SummaryKR != "두 문장 요약." {
		t.Errorf("unexpected translation %+v", out[0])
	}
	if out[1].TitleKR != "" || out[1].SummaryKR != "" {
		t.Errorf("empty answers must leave fields empty, got %+v", out[1])
	}
	if in[0].TitleKR != "" {
		t.Error("input must not be modified")
	}
	if rater.systems[0] != TranslateSystemPrompt || !strings.Contains(rater.prompts[0], "[2] Title: Candidate 1") {
		t.Error("unexpected translation prompt")
	}
}

func TestTranslator_FailureLeavesFieldsEmpty(t *testing.T) {
	rater := &fakeRater{replies: []reply{{err: errors.New("timeout")}}}
	caller, _ := testCaller(rater)

	in := candidates(2)
	out := NewTranslator(caller).TranslateSummaries(context.Background(), in)
	if !reflect.DeepEqual(out, in) {
		t.Error("failed translation must return articles unchanged")
	}
}
