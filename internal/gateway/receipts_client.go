package gateway

import (
	"bytes"
	"cinema-booking/internal/model"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// ReceiptSender 收據寄送的出口。實作失敗只會被 worker 記 log 後重試或丟棄，
// 永遠不會回頭影響已完成的購票。
type ReceiptSender interface {
	SendReceipt(ctx context.Context, job *model.ReceiptJob) error
}

type ReceiptsClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewReceiptsClient(baseURL string) *ReceiptsClient {
	return &ReceiptsClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *ReceiptsClient) SendReceipt(ctx context.Context, job *model.ReceiptJob) error {
	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal receipt: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/receipts", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build receipt request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send receipt: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// 200 表示收據已存在（重送），201 表示新開立，兩者都算成功
		return nil
	default:
		return fmt.Errorf("unexpected status code for POST /receipts: %d", resp.StatusCode)
	}
}
