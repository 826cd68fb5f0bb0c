package conversation

import "testing"

func TestManager_UnknownUserGetsZeroSession(t *testing.T) {
	m := NewManager()

	s := m.Get(42)
	if s.State != StateNone {
		t.Errorf("expected StateNone, got %d", s.State)
	}
	if s.ChattingWith != 0 {
		t.Errorf("expected no chat partner, got %d", s.ChattingWith)
	}
}

func TestManager_SetState(t *testing.T) {
	m := NewManager()

	m.SetState(1, StateAge)
	if got := m.Get(1).State; got != StateAge {
		t.Errorf("expected StateAge, got %d", got)
	}

	// other users are untouched
	if got := m.Get(2).State; got != StateNone {
		t.Errorf("expected StateNone for other user, got %d", got)
	}
}

func TestManager_StartChat(t *testing.T) {
	m := NewManager()

	m.StartChat(1, 99)
	s := m.Get(1)
	if s.State != StateChatting {
		t.Errorf("expected StateChatting, got %d", s.State)
	}
	if s.ChattingWith != 99 {
		t.Errorf("expected partner 99, got %d", s.ChattingWith)
	}
}

func TestManager_CrushDraft(t *testing.T) {
	m := NewManager()

	m.SetState(1, StateCrushExternalName)
	m.SetCrushName(1, "Hanna")
	m.SetState(1, StateCrushExternalSocial)
	m.SetCrushSocial(1, "@hanna")

	s := m.Get(1)
	if s.CrushName != "Hanna" || s.CrushSocial != "@hanna" {
		t.Errorf("draft not kept across states: %+v", s)
	}
}

func TestManager_Reset(t *testing.T) {
	m := NewManager()

	m.StartChat(1, 99)
	m.SetCrushName(1, "Hanna")
	m.Reset(1)

	s := m.Get(1)
	if s.State != StateNone || s.ChattingWith != 0 || s.CrushName != "" {
		t.Errorf("expected zero session after reset, got %+v", s)
	}
}

func TestManager_GetReturnsCopy(t *testing.T) {
	m := NewManager()
	m.SetState(1, StateBio)

	s := m.Get(1)
	s.State = StateChatting

	if got := m.Get(1).State; got != StateBio {
		t.Errorf("mutating the copy must not touch the stored session, got %d", got)
	}
}
