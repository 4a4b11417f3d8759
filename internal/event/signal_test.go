package event

import "testing"

func TestSignalPublishOrder(t *testing.T) {
	s := NewSignal("LandedOnPlatform")

	var order []int
	s.Subscribe(func() { order = append(order, 1) })
	s.Subscribe(func() { order = append(order, 2) })
	s.Subscribe(func() { order = append(order, 3) })

	s.Publish()

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("handlers ran in order %v, expected [1 2 3]", order)
	}
}

func TestSignalUnsubscribe(t *testing.T) {
	var s Signal

	calls := 0
	unsubscribe := s.Subscribe(func() { calls++ })
	s.Publish()
	unsubscribe()
	unsubscribe() // second call must be harmless
	s.Publish()

	if calls != 1 {
		t.Errorf("handler called %d times, expected 1", calls)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", s.Len())
	}
}

func TestSignalUnsubscribeDuringPublish(t *testing.T) {
	var s Signal

	var unsubscribeA func()
	aCalls, bCalls := 0, 0
	unsubscribeA = s.Subscribe(func() {
		aCalls++
		unsubscribeA()
	})
	s.Subscribe(func() { bCalls++ })

	s.Publish()
	s.Publish()

	if aCalls != 1 {
		t.Errorf("self-removing handler called %d times, expected 1", aCalls)
	}
	if bCalls != 2 {
		t.Errorf("remaining handler called %d times, expected 2", bCalls)
	}
}

func TestSignalNoSubscribers(t *testing.T) {
	s := NewSignal("FellIntoTheVoid")
	s.Publish() // must not panic

	if s.String() != "FellIntoTheVoid" {
		t.Errorf("String() = %q", s.String())
	}
	if (&Signal{}).String() != "signal" {
		t.Error("unnamed signal should print as \"signal\"")
	}
}

func TestSignalNilHandler(t *testing.T) {
	var s Signal
	s.Subscribe(nil)()
	if s.Len() != 0 {
		t.Errorf("nil handler should not be registered, Len() = %d", s.Len())
	}
}
