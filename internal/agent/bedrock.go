package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime/types"
)

// BedrockClient implements Invoker against a Bedrock agent.
type BedrockClient struct {
	client       *bedrockagentruntime.Client
	agentID      string
	agentAliasID string
	timeout      time.Duration
}

// NewBedrockClient constructs a Bedrock agent invoker. The timeout bounds a
// single invocation including stream consumption; it should be generous,
// since this call dominates request latency.
func NewBedrockClient(ctx context.Context, region, agentID, agentAliasID string, timeout time.Duration) (*BedrockClient, error) {
	if strings.TrimSpace(agentID) == "" {
		return nil, fmt.Errorf("BEDROCK_AGENT_ID is required")
	}
	if strings.TrimSpace(agentAliasID) == "" {
		return nil, fmt.Errorf("BEDROCK_AGENT_ALIAS_ID is required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &BedrockClient{
		client:       bedrockagentruntime.NewFromConfig(cfg),
		agentID:      agentID,
		agentAliasID: agentAliasID,
		timeout:      timeout,
	}, nil
}

// Invoke sends the prompt and concatenates the streamed completion chunks in
// delivery order.
func (b *BedrockClient) Invoke(ctx context.Context, sessionID, inputText string) (string, error) {
	if b.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}

	out, err := b.client.InvokeAgent(ctx, &bedrockagentruntime.InvokeAgentInput{
		AgentId:      aws.String(b.agentID),
		AgentAliasId: aws.String(b.agentAliasID),
		SessionId:    aws.String(sessionID),
		InputText:    aws.String(inputText),
	})
	if err != nil {
		return "", fmt.Errorf("invoke agent session=%s: %w", sessionID, err)
	}

	stream := out.GetStream()
	defer stream.Close()

	var completion strings.Builder
	for event := range stream.Events() {
		if chunk, ok := event.(*types.ResponseStreamMemberChunk); ok {
			completion.Write(chunk.Value.Bytes)
		}
	}
	if err := stream.Err(); err != nil {
		return "", fmt.Errorf("read agent stream session=%s: %w", sessionID, err)
	}

	return completion.String(), nil
}

var _ Invoker = (*BedrockClient)(nil)
