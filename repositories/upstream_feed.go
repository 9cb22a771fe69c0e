package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/cockroachdb/errors"

	"github.com/tidewatch/tidewatch-backend/dto"
	"github.com/tidewatch/tidewatch-backend/models"
)

// UpstreamFeedRepository is the thin polling client over the external record
// store. It owns no derivation logic: it fetches the three entity arrays in
// one snapshot payload and forwards mutation requests.
type UpstreamFeedRepository struct {
	baseUrl string
	client  *http.Client
}

func NewUpstreamFeedRepository(baseUrl string) *UpstreamFeedRepository {
	return &UpstreamFeedRepository{
		baseUrl: baseUrl,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchSnapshot retrieves the current upstream arrays, retrying transient
// failures. The payload's updated_at is the "data age" shown on every
// surface; when absent the local receive time is used.
func (repo *UpstreamFeedRepository) FetchSnapshot(ctx context.Context) (dto.UpstreamSnapshot, error) {
	var snapshot dto.UpstreamSnapshot
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet,
				fmt.Sprintf("%s/snapshot", repo.baseUrl), nil)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			resp, err := repo.client.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return errors.Newf("upstream snapshot returned status %d", resp.StatusCode)
			}
			return json.NewDecoder(resp.Body).Decode(&snapshot)
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(200*time.Millisecond),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return dto.UpstreamSnapshot{}, errors.Wrap(err, "fetching upstream snapshot")
	}
	return snapshot, nil
}

// SubmitMutation forwards an acknowledge/override/resolve request upstream.
// A 4xx answer means the store rejected the mutation; anything else
// non-2xx is a transport failure.
func (repo *UpstreamFeedRepository) SubmitMutation(ctx context.Context, mutation models.MutationRequest) error {
	body, err := json.Marshal(map[string]string{
		"id":        mutation.Id,
		"kind":      string(mutation.Kind),
		"entity_id": mutation.EntityId,
		"actor":     mutation.Actor,
	})
	if err != nil {
		return errors.Wrap(err, "marshalling mutation request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/mutations", repo.baseUrl), bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "building mutation request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := repo.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "submitting mutation upstream")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return errors.Wrapf(models.ErrUpstreamRejected, "status %d", resp.StatusCode)
	default:
		return errors.Newf("upstream mutation returned status %d", resp.StatusCode)
	}
}
