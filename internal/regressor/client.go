package regressor

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/hichamjanati/ramp-workflow/gen/regressorpb"
	"github.com/hichamjanati/ramp-workflow/internal/mixture"
)

// #region client-struct
// Client wraps the gRPC connection to an out-of-process user regressor.
type Client struct {
	conn   *grpc.ClientConn
	client pb.RegressorServiceClient
}

// #endregion client-struct

// #region constructor
// NewClient connects to a regressor service.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewRegressorServiceClient(conn),
	}, nil
}

// NewClientWithService creates a Client with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.RegressorServiceClient) *Client {
	return &Client{client: svc}
}

// #endregion constructor

// #region close
// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// #endregion close

// #region fit
// Fit sends the training matrices to the regressor service.
func (c *Client) Fit(ctx context.Context, features, targets *mat.Dense, restart []bool) error {
	_, err := c.client.Fit(ctx, &pb.FitRequest{
		Features: toMatrix(features),
		Targets:  toMatrix(targets),
		Restart:  restart,
	})
	if err != nil {
		return fmt.Errorf("fit rpc: %w", err)
	}
	return nil
}

// #endregion fit

// #region predict
// Predict requests the mixture triple for each feature row.
func (c *Client) Predict(ctx context.Context, features *mat.Dense, restart []bool) (mixture.Prediction, error) {
	resp, err := c.client.Predict(ctx, &pb.PredictRequest{
		Features: toMatrix(features),
		Restart:  restart,
	})
	if err != nil {
		return mixture.Prediction{}, fmt.Errorf("predict rpc: %w", err)
	}

	weights, err := fromMatrix(resp.GetWeights(), "weights")
	if err != nil {
		return mixture.Prediction{}, err
	}
	types, err := fromMatrix(resp.GetTypes(), "types")
	if err != nil {
		return mixture.Prediction{}, err
	}
	params, err := fromMatrix(resp.GetParams(), "params")
	if err != nil {
		return mixture.Prediction{}, err
	}

	return mixture.Prediction{Weights: weights, Types: types, Params: params}, nil
}

// #endregion predict

// #region conversion
func toMatrix(m *mat.Dense) *pb.Matrix {
	rows, cols := m.Dims()
	data := make([]float64, 0, rows*cols)
	for r := 0; r < rows; r++ {
		data = append(data, m.RawRowView(r)...)
	}
	return &pb.Matrix{Rows: uint32(rows), Cols: uint32(cols), Data: data}
}

func fromMatrix(m *pb.Matrix, field string) (*mat.Dense, error) {
	if m == nil {
		return nil, mixture.Contractf("predict response is missing %s", field)
	}
	rows, cols := int(m.GetRows()), int(m.GetCols())
	if rows*cols != len(m.GetData()) {
		return nil, mixture.Contractf("%s claims %dx%d but carries %d values",
			field, rows, cols, len(m.GetData()))
	}
	if rows == 0 || cols == 0 {
		return nil, mixture.Contractf("%s is empty (%dx%d)", field, rows, cols)
	}
	return mat.NewDense(rows, cols, m.GetData()), nil
}

// #endregion conversion
