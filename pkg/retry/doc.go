// Package retry repeats HTTP exchanges with backoff.
//
// Do classifies each failure by its status code: no response, 5xx and the
// transient 4xx codes are retried; any other status stops immediately. A
// Policy with MaxRetries of zero makes exactly one call.
//
//	err := retry.Do(ctx, retry.Policy{MaxRetries: 2}, func(ctx context.Context) (int, error) {
//	    resp, err := client.Do(req.WithContext(ctx))
//	    if err != nil {
//	        return 0, err
//	    }
//	    defer resp.Body.Close()
//	    return resp.StatusCode, checkStatus(resp)
//	})
package retry
