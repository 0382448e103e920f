// Package resilience layers execution policies over rop.Execute without
// changing the Result contract.
//
// Retry runs a callable up to maxAttempts+1 times with an optional fixed or
// exponential delay. Every failure is retried the same way unless
// RetryOptions.Retryable says otherwise.
//
// Timeout races a callable against a timer. When the timer wins the caller
// gets a rop.TimeoutError failure and the operation is abandoned, not
// cancelled: it keeps running in its goroutine and its outcome is dropped.
package resilience
