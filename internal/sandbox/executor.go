// Package sandbox executes generated chart code in the Python render
// sidecar over gRPC. The sidecar runs the code in a restricted
// namespace (charting-library handles plus the explicitly bound
// variables) in its own process, so a hostile or broken snippet cannot
// touch controller state.
package sandbox

// #region imports
import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	pb "github.com/kzhou57/vizqa/gen/executorpb"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// #endregion

// #region types

// ExecutionError reports that generated code raised inside the sidecar.
type ExecutionError struct {
	Message string
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("execution failed: %s", e.Message)
}

// Result carries the sidecar outcome of one execution.
type Result struct {
	ImagePaths []string
}

// #endregion types

// #region client-struct

// ExecClient wraps the gRPC connection to the executor sidecar.
type ExecClient struct {
	conn   *grpc.ClientConn
	client pb.ExecutorClient
}

// #endregion client-struct

// #region constructor

// NewExecClient connects to the executor sidecar.
func NewExecClient(addr string) (*ExecClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &ExecClient{
		conn:   conn,
		client: pb.NewExecutorClient(conn),
	}, nil
}

// NewExecClientWithService creates an ExecClient with an injected
// service implementation. Used for testing without a real connection.
func NewExecClientWithService(svc pb.ExecutorClient) *ExecClient {
	return &ExecClient{client: svc}
}

// #endregion constructor

// #region close

// Close shuts down the gRPC connection.
func (c *ExecClient) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion close

// #region execute

// Execute runs code in the sidecar with only the supplied variables
// bound. A deadline on ctx bounds runaway generated code; an error
// raised by the code comes back as *ExecutionError, anything else is a
// transport failure.
func (c *ExecClient) Execute(ctx context.Context, code string, bindings map[string]any) (Result, error) {
	bindingsJSON, err := json.Marshal(bindings)
	if err != nil {
		return Result{}, fmt.Errorf("marshal bindings: %w", err)
	}

	var timeoutMs int64
	if deadline, ok := ctx.Deadline(); ok {
		timeoutMs = time.Until(deadline).Milliseconds()
	}

	resp, err := c.client.Execute(ctx, &pb.ExecuteRequest{
		Code:         code,
		BindingsJson: string(bindingsJSON),
		TimeoutMs:    timeoutMs,
	})
	if err != nil {
		return Result{}, fmt.Errorf("execute rpc: %w", err)
	}
	if !resp.Ok {
		return Result{}, &ExecutionError{Message: resp.Error}
	}
	return Result{ImagePaths: resp.ImagePaths}, nil
}

// #endregion execute
