package events

type EventType int

const (
	StakedEventType        EventType = 1
	RedeemedEventType      EventType = 2
	ClaimedEventType       EventType = 3
	AccountLockedEventType EventType = 4
)

const (
	StakedRoutingKey        string = "ledger.staked"
	RedeemedRoutingKey      string = "ledger.redeemed"
	ClaimedRoutingKey       string = "ledger.claimed"
	AccountLockedRoutingKey string = "ledger.account_locked"
)

type StakedEvent struct {
	EventType EventType `json:"event_type"` // always 1
	Address   string    `json:"address"`
	Amount    uint64    `json:"amount"`
	DepositId uint64    `json:"deposit_id"`
}

func NewStakedEvent(address string, amount, depositId uint64) *StakedEvent {
	return &StakedEvent{
		EventType: StakedEventType,
		Address:   address,
		Amount:    amount,
		DepositId: depositId,
	}
}

type RedeemedEvent struct {
	EventType        EventType `json:"event_type"` // always 2
	Address          string    `json:"address"`
	Amount           uint64    `json:"amount"`
	RequestId        string    `json:"request_id"`
	CooldownDeadline int64     `json:"cooldown_deadline"`
}

func NewRedeemedEvent(address string, amount uint64, requestId string, cooldownDeadline int64) *RedeemedEvent {
	return &RedeemedEvent{
		EventType:        RedeemedEventType,
		Address:          address,
		Amount:           amount,
		RequestId:        requestId,
		CooldownDeadline: cooldownDeadline,
	}
}

type ClaimedEvent struct {
	EventType EventType `json:"event_type"` // always 3
	Address   string    `json:"address"`
	Amount    uint64    `json:"amount"`
}

func NewClaimedEvent(address string, amount uint64) *ClaimedEvent {
	return &ClaimedEvent{
		EventType: ClaimedEventType,
		Address:   address,
		Amount:    amount,
	}
}

type AccountLockedEvent struct {
	EventType EventType `json:"event_type"` // always 4
	Address   string    `json:"address"`
	Locked    bool      `json:"locked"`
}

func NewAccountLockedEvent(address string, locked bool) *AccountLockedEvent {
	return &AccountLockedEvent{
		EventType: AccountLockedEventType,
		Address:   address,
		Locked:    locked,
	}
}
