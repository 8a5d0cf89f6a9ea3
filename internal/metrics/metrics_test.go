package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveContractCall(t *testing.T) {
	before := testutil.ToFloat64(contractCalls.WithLabelValues("verifyProduct", "error"))
	ObserveContractCall("verifyProduct", time.Now(), errors.New("boom"))
	after := testutil.ToFloat64(contractCalls.WithLabelValues("verifyProduct", "error"))
	assert.Equal(t, before+1, after)
}

func TestObservePinAndTransition(t *testing.T) {
	before := testutil.ToFloat64(pinUploads.WithLabelValues("ok"))
	ObservePin(nil)
	assert.Equal(t, before+1, testutil.ToFloat64(pinUploads.WithLabelValues("ok")))

	before = testutil.ToFloat64(registrations.WithLabelValues("approve"))
	ObserveTransition("approve")
	assert.Equal(t, before+1, testutil.ToFloat64(registrations.WithLabelValues("approve")))
}
