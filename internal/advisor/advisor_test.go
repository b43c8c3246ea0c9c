package advisor

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/alexanderramin/hknav/internal/catalog"
	"github.com/alexanderramin/hknav/internal/domain"
	"github.com/alexanderramin/hknav/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockLLMClient struct {
	response string
	sources  []string
	err      error
	calls    []llm.GenerateRequest
}

func (m *mockLLMClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	m.calls = append(m.calls, req)
	if m.err != nil {
		return nil, m.err
	}
	return &llm.GenerateResponse{Text: m.response, Model: "test-model", Sources: m.sources}, nil
}

func (m *mockLLMClient) Available(context.Context) bool { return m.err == nil }

func TestAsk_SendsBoundedContext(t *testing.T) {
	client := &mockLLMClient{response: "Apply early."}
	svc := NewService(client, nil)
	schools := catalog.Base()

	answer := svc.Ask(context.Background(), "When should I apply?", schools)

	assert.Equal(t, "Apply early.", answer)
	require.Len(t, client.calls, 1)
	req := client.calls[0]
	assert.Equal(t, llm.TaskAsk, req.Task)
	assert.True(t, req.Grounded)
	assert.Contains(t, req.SystemPrompt, "admission consultant")
	assert.True(t, strings.HasPrefix(req.UserPrompt, "Context: "))
	assert.True(t, strings.HasSuffix(req.UserPrompt, "User Question: When should I apply?"))
	assert.Contains(t, req.UserPrompt, contextTopics)

	for _, s := range schools[:contextSampleSize] {
		assert.Contains(t, req.UserPrompt, fmt.Sprintf("%s (%s)", s.Name, s.NameZh))
	}
	for _, s := range schools[contextSampleSize:] {
		assert.NotContains(t, req.UserPrompt, s.Name+" (")
	}
}

func TestBuildContext_ShortCatalog(t *testing.T) {
	schools := []domain.School{{Name: "Alpha", NameZh: "甲"}}
	ctx := BuildContext(schools)
	assert.Contains(t, ctx, "Alpha (甲)")
	assert.Contains(t, ctx, "has 1 Hong Kong")
	assert.NotPanics(t, func() { BuildContext(nil) })
}

func TestAsk_StripsMarkdownAndAppendsSources(t *testing.T) {
	client := &mockLLMClient{
		response: "## 申请时间\n**九月** 开始",
		sources:  []string{"https://www.spcc.edu.hk/admission#dates", "https://www.edb.gov.hk"},
	}
	svc := NewService(client, nil)

	answer := svc.Ask(context.Background(), "q", catalog.Base())

	assert.True(t, strings.HasPrefix(answer, " 申请时间\n九月 开始"))
	assert.Contains(t, answer, "\n\n参考来源:\n- [官方/参考链接](https://www.spcc.edu.hk/admission#dates)")
	assert.Contains(t, answer, "- [官方/参考链接](https://www.edb.gov.hk)")
}

func TestAsk_Fallbacks(t *testing.T) {
	tests := []struct {
		name   string
		client *mockLLMClient
		want   string
	}{
		{"backend down", &mockLLMClient{err: llm.ErrUnavailable}, FallbackUnavailable},
		{"timeout", &mockLLMClient{err: llm.ErrTimeout}, FallbackUnavailable},
		{"disabled", &mockLLMClient{err: llm.ErrDisabled}, FallbackUnavailable},
		{"empty from backend", &mockLLMClient{err: llm.ErrEmptyResponse}, FallbackEmptyAnswer},
		{"only markup", &mockLLMClient{response: "### **"}, FallbackEmptyAnswer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(tt.client, nil)
			assert.Equal(t, tt.want, svc.Ask(context.Background(), "q", nil))
		})
	}
}

func TestMonitor_EmptyNamesSkipsBackend(t *testing.T) {
	client := &mockLLMClient{response: "news"}
	svc := NewService(client, nil)

	text, ok := svc.Monitor(context.Background(), nil)

	assert.False(t, ok)
	assert.Empty(t, text)
	assert.Empty(t, client.calls)
}

func TestMonitor_Digest(t *testing.T) {
	client := &mockLLMClient{response: "# 拔萃男書院\n*面试* 已公布", sources: []string{"https://www.dbs.edu.hk"}}
	svc := NewService(client, nil)

	text, ok := svc.Monitor(context.Background(), []string{"拔萃男書院", "聖保羅男女中學附屬小學"})

	require.True(t, ok)
	assert.True(t, strings.HasPrefix(text, "拔萃男書院\n面试 已公布"))
	assert.Contains(t, text, "https://www.dbs.edu.hk")
	require.Len(t, client.calls, 1)
	assert.Equal(t, llm.TaskMonitor, client.calls[0].Task)
	assert.Contains(t, client.calls[0].UserPrompt, "- 聖保羅男女中學附屬小學")
}

func TestMonitor_FailureYieldsNothing(t *testing.T) {
	svc := NewService(&mockLLMClient{err: llm.ErrTimeout}, nil)
	text, ok := svc.Monitor(context.Background(), []string{"A"})
	assert.False(t, ok)
	assert.Empty(t, text)
}

func TestLookup_ParsesPartialRecord(t *testing.T) {
	client := &mockLLMClient{response: "Here you go:\n```json\n" + `{
		"name": "Diocesan Boys' School Primary Division",
		"nameZh": "拔萃男書院附屬小學",
		"type": "DSS (Direct Subsidy)",
		"curriculum": "DSE, IB",
		"language": ["English"],
		"applicationEnd": "2024-09-30",
		"description": "**Boys** only",
	}` + "\n```"}
	svc := NewService(client, nil)

	p, ok := svc.Lookup(context.Background(), " DBS ")

	require.True(t, ok)
	assert.Equal(t, "拔萃男書院附屬小學", p.NameZh)
	assert.Equal(t, domain.LooseStrings{"DSE", "IB"}, p.Curriculum)
	assert.Equal(t, "Boys only", p.Description)
	require.Len(t, client.calls, 1)
	assert.True(t, client.calls[0].JSON)
	assert.Equal(t, "School: DBS", client.calls[0].UserPrompt)
}

func TestLookup_Failures(t *testing.T) {
	tests := []struct {
		name   string
		client *mockLLMClient
		query  string
	}{
		{"backend error", &mockLLMClient{err: llm.ErrUnavailable}, "DBS"},
		{"not json", &mockLLMClient{response: "I could not find that school."}, "DBS"},
		{"empty object", &mockLLMClient{response: "{}"}, "DBS"},
		{"array", &mockLLMClient{response: `["DBS"]`}, "DBS"},
		{"blank name", &mockLLMClient{response: `{"name":"x"}`}, "  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(tt.client, nil)
			p, ok := svc.Lookup(context.Background(), tt.query)
			assert.False(t, ok)
			assert.Nil(t, p)
		})
	}
}
