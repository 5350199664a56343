// Package httputil provides the HTTP plumbing behind asset fetching.
//
// # Overview
//
//   - [Get]: Fetch a URL into memory with status-code classification
//   - [Retry]: Automatic retry with exponential backoff
//
// # Retry
//
// [Retry] wraps requests with automatic retry for transient failures.
// Only errors wrapped in [RetryableError] are retried; [Get] classifies
// timeouts, connection errors and 5xx responses as retryable, so
//
//	var data []byte
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    var err error
//	    data, err = httputil.Get(ctx, client, url)
//	    return err
//	})
//
// retries the transient cases and fails fast on 4xx responses.
package httputil
