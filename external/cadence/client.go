package cadence

import (
	"context"
	"fmt"

	"github.com/uber-go/tally"
	"go.uber.org/cadence/.gen/go/cadence/workflowserviceclient"
	"go.uber.org/cadence/client"
	"go.uber.org/cadence/workflow"
	"go.uber.org/yarpc"
	"go.uber.org/yarpc/transport/tchannel"
)

const (
	ClientName     = "commute-leaderboard-worker"
	CadenceService = "cadence-frontend"
)

// WorkflowStarter - the part of the cadence client used to drive workflows
type WorkflowStarter interface {
	StartWorkflow(ctx context.Context, options client.StartWorkflowOptions, workflow interface{}, args ...interface{}) (*workflow.Execution, error)
	SignalWithStartWorkflow(ctx context.Context, workflowID string, signalName string, signalArg interface{},
		options client.StartWorkflowOptions, workflow interface{}, workflowArgs ...interface{}) (*workflow.Execution, error)
}

type CadenceClient struct {
	client client.Client
}

// BuildCadenceServiceClient connects a tchannel dispatcher to the cadence frontend
func BuildCadenceServiceClient(hostPort string) (workflowserviceclient.Interface, error) {
	ch, err := tchannel.NewChannelTransport(tchannel.ServiceName(ClientName))
	if err != nil {
		return nil, fmt.Errorf("failed to setup tchannel: %w", err)
	}
	dispatcher := yarpc.NewDispatcher(yarpc.Config{
		Name: ClientName,
		Outbounds: yarpc.Outbounds{
			CadenceService: {Unary: ch.NewSingleOutbound(hostPort)},
		},
	})
	if err := dispatcher.Start(); err != nil {
		return nil, fmt.Errorf("failed to start dispatcher: %w", err)
	}

	return workflowserviceclient.New(dispatcher.ClientConfig(CadenceService)), nil
}

// NewClient returns a cadence client of a domain using the msgpack data converter
func NewClient(hostPort, domain string, scope tally.Scope) (*CadenceClient, error) {
	service, err := BuildCadenceServiceClient(hostPort)
	if err != nil {
		return nil, err
	}

	if scope == nil {
		scope = tally.NoopScope
	}

	return &CadenceClient{
		client: client.NewClient(
			service,
			domain,
			&client.Options{
				MetricsScope:  scope,
				DataConverter: NewMsgPackDataConverter(),
			},
		),
	}, nil
}

func (c *CadenceClient) StartWorkflow(ctx context.Context, options client.StartWorkflowOptions, workflow interface{}, args ...interface{}) (*workflow.Execution, error) {
	return c.client.StartWorkflow(ctx, options, workflow, args...)
}

func (c *CadenceClient) SignalWithStartWorkflow(ctx context.Context,
	workflowID string, signalName string, signalArg interface{},
	options client.StartWorkflowOptions, workflow interface{}, workflowArgs ...interface{}) (*workflow.Execution, error) {
	return c.client.SignalWithStartWorkflow(ctx, workflowID, signalName, signalArg, options, workflow, workflowArgs...)
}
