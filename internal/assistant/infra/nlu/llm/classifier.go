// Package llm classifies shopping messages with a chat model that is forced
// to answer through the submit_classification tool.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/dwikikusuma/naija-assistant/internal/assistant/domain"
)

const (
	modelNodeKey = "nlu_classifier_model"
	toolName     = "submit_classification"
)

const systemPrompt = `You classify messages sent to the shopping assistant of a Nigerian online marketplace.
Pick exactly one intent:
- greeting: the user says hello or asks what you can do
- addToCart: the user wants to add or buy a product
- removeFromCart: the user wants to take a product out of their cart
- searchProduct: the user is looking for a product
- viewCart: the user wants to see their cart
- unknown: anything else
Extract entities as {"text","label"} pairs in the order they appear. Use label "product" for product
names and "store" for the store or merchant the user names. Copy the text as written by the user.
Submit the result by calling submit_classification. Do not write any other text.`

type Classifier struct {
	log      *slog.Logger
	runnable compose.Runnable[string, domain.Classification]
	tools    []*schema.ToolInfo
}

type Config struct {
	BaseURL string
	APIKey  string
	Model   string
}

// NewArkClassifier builds a classifier backed by an ark chat model.
func NewArkClassifier(ctx context.Context, cfg Config, log *slog.Logger) (*Classifier, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("llm model is required")
	}
	cm, err := ark.NewChatModel(ctx, &ark.ChatModelConfig{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("init ark chat model: %w", err)
	}
	return NewClassifier(ctx, cm, log)
}

func NewClassifier(ctx context.Context, chatModel model.BaseChatModel, log *slog.Logger) (*Classifier, error) {
	if chatModel == nil {
		return nil, fmt.Errorf("chat model is required")
	}
	if log == nil {
		log = slog.Default()
	}

	tools := []*schema.ToolInfo{classificationTool()}

	m := chatModel
	if tc, ok := chatModel.(model.ToolCallingChatModel); ok {
		if withTools, err := tc.WithTools(tools); err != nil {
			log.Warn("bind classification tool failed", slog.Any("err", err))
		} else {
			m = withTools
		}
	}

	chain := compose.NewChain[string, domain.Classification]()

	chain.AppendLambda(compose.InvokableLambda(func(_ context.Context, text string) ([]*schema.Message, error) {
		return []*schema.Message{
			schema.SystemMessage(systemPrompt),
			schema.UserMessage(text),
		}, nil
	}))

	chain.AppendChatModel(m, compose.WithNodeKey(modelNodeKey))

	chain.AppendLambda(compose.InvokableLambda(func(_ context.Context, msg *schema.Message) (domain.Classification, error) {
		return parseToolCall(msg)
	}))

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("compile classifier chain: %w", err)
	}

	return &Classifier{log: log, runnable: runnable, tools: tools}, nil
}

func (c *Classifier) Classify(ctx context.Context, text string) (domain.Classification, error) {
	opt := compose.WithChatModelOption(
		model.WithTools(c.tools),
		model.WithToolChoice(schema.ToolChoiceForced),
	).DesignateNode(modelNodeKey)

	out, err := c.runnable.Invoke(ctx, text, opt)
	if err != nil {
		return domain.Classification{}, fmt.Errorf("%w: %v", domain.ErrClassification, err)
	}
	c.log.DebugContext(ctx, "message classified",
		slog.String("intent", out.Intent),
		slog.Int("entities", len(out.Entities)),
	)
	return out, nil
}

func parseToolCall(msg *schema.Message) (domain.Classification, error) {
	if msg == nil {
		return domain.Classification{}, fmt.Errorf("empty model message")
	}

	var payload string
	for _, call := range msg.ToolCalls {
		if strings.EqualFold(call.Function.Name, toolName) {
			payload = strings.TrimSpace(call.Function.Arguments)
			break
		}
	}
	if payload == "" {
		return domain.Classification{}, fmt.Errorf("%s tool call missing", toolName)
	}

	var out domain.Classification
	if err := json.Unmarshal([]byte(payload), &out); err != nil {
		return domain.Classification{}, fmt.Errorf("unmarshal classification: %w", err)
	}
	if out.Intent == "" {
		return domain.Classification{}, fmt.Errorf("classification has no intent")
	}

	ents := out.Entities[:0]
	for _, e := range out.Entities {
		e.Text = strings.TrimSpace(e.Text)
		if e.Text != "" && e.Label != "" {
			ents = append(ents, e)
		}
	}
	out.Entities = ents
	return out, nil
}

func classificationTool() *schema.ToolInfo {
	intents := make([]string, 0, len(domain.Intents())+1)
	for _, i := range domain.Intents() {
		intents = append(intents, i.String())
	}
	intents = append(intents, domain.IntentUnknown.String())

	return &schema.ToolInfo{
		Name: toolName,
		Desc: "Submit the intent and entities extracted from a shopping message",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"intent": {
				Type:     schema.String,
				Desc:     "The user's intent",
				Enum:     intents,
				Required: true,
			},
			"entities": {
				Type: schema.Array,
				Desc: "Entities in the order they appear in the message",
				ElemInfo: &schema.ParameterInfo{
					Type: schema.Object,
					SubParams: map[string]*schema.ParameterInfo{
						"text": {
							Type:     schema.String,
							Desc:     "Entity text as written by the user",
							Required: true,
						},
						"label": {
							Type:     schema.String,
							Desc:     "Entity label",
							Enum:     []string{domain.LabelProduct, domain.LabelStore},
							Required: true,
						},
					},
				},
			},
		}),
	}
}
