package models

// OperatorStatus is the operational status of an operator
type OperatorStatus string

const (
	OperatorStatusAwaitingCall OperatorStatus = "aguardando_chamada"
	OperatorStatusInCall       OperatorStatus = "em_chamada"
	OperatorStatusOnBreak      OperatorStatus = "pausa"
	OperatorStatusOffline      OperatorStatus = "offline"
)

// CallDirection is the direction of a call
type CallDirection string

const (
	CallDirectionInbound  CallDirection = "entrada"
	CallDirectionOutbound CallDirection = "saida"
	CallDirectionInternal CallDirection = "interna"
)

// CallStatus is the lifecycle status of a call. Calls only move from
// in progress to finalized.
type CallStatus string

const (
	CallStatusInProgress CallStatus = "em_andamento"
	CallStatusFinalized  CallStatus = "finalizada"
)

// ActionType identifies the operator action a mission tracks
type ActionType string

const (
	ActionCall         ActionType = "call"
	ActionResolvedCall ActionType = "resolved_call"
)

// MissionCadence describes how often a mission is meant to be pursued
type MissionCadence string

const (
	MissionCadenceDaily   MissionCadence = "diaria"
	MissionCadenceWeekly  MissionCadence = "semanal"
	MissionCadenceMonthly MissionCadence = "mensal"
	MissionCadenceSpecial MissionCadence = "especial"
)

// AchievementCondition is the statistic an achievement threshold is compared against
type AchievementCondition string

const (
	ConditionCallCount       AchievementCondition = "total_chamadas"
	ConditionAvgHandleTime   AchievementCondition = "tempo_medio_atendimento"
	ConditionSatisfaction    AchievementCondition = "satisfacao"
	ConditionResolutionCount AchievementCondition = "chamadas_resolvidas"
	ConditionPoints          AchievementCondition = "pontos"
	ConditionLevel           AchievementCondition = "nivel"
)

// RewardRarity classifies store items
type RewardRarity string

const (
	RewardRarityCommon    RewardRarity = "comum"
	RewardRarityRare      RewardRarity = "raro"
	RewardRarityEpic      RewardRarity = "epico"
	RewardRarityLegendary RewardRarity = "lendario"
)

// PurchaseStatus is the status of a store purchase
type PurchaseStatus string

const (
	PurchaseStatusPending   PurchaseStatus = "pendente"
	PurchaseStatusApproved  PurchaseStatus = "aprovada"
	PurchaseStatusDelivered PurchaseStatus = "entregue"
	PurchaseStatusCancelled PurchaseStatus = "cancelada"
)

// GoalType is the metric a manager-assigned goal measures
type GoalType string

const (
	GoalTypeCalls        GoalType = "chamadas"
	GoalTypeResolutions  GoalType = "resolucoes"
	GoalTypeSatisfaction GoalType = "satisfacao"
	GoalTypePoints       GoalType = "pontos"
)

// GoalPeriod is the period a goal covers
type GoalPeriod string

const (
	GoalPeriodDaily   GoalPeriod = "diaria"
	GoalPeriodWeekly  GoalPeriod = "semanal"
	GoalPeriodMonthly GoalPeriod = "mensal"
)

// Role identifies the kind of authenticated subject
type Role string

const (
	RoleOperator Role = "operador"
	RoleManager  Role = "gestor"
)

// IsValid checks if the OperatorStatus is valid
func (s OperatorStatus) IsValid() bool {
	switch s {
	case OperatorStatusAwaitingCall, OperatorStatusInCall, OperatorStatusOnBreak, OperatorStatusOffline:
		return true
	}
	return false
}

// IsSelfSelectable reports whether an operator may switch to this status directly.
// In-call is only entered by starting a call.
func (s OperatorStatus) IsSelfSelectable() bool {
	switch s {
	case OperatorStatusAwaitingCall, OperatorStatusOnBreak, OperatorStatusOffline:
		return true
	}
	return false
}

// IsValid checks if the CallDirection is valid
func (d CallDirection) IsValid() bool {
	switch d {
	case CallDirectionInbound, CallDirectionOutbound, CallDirectionInternal:
		return true
	}
	return false
}

// IsValid checks if the AchievementCondition is valid
func (c AchievementCondition) IsValid() bool {
	switch c {
	case ConditionCallCount, ConditionAvgHandleTime, ConditionSatisfaction,
		ConditionResolutionCount, ConditionPoints, ConditionLevel:
		return true
	}
	return false
}

// IsValid checks if the ActionType is valid
func (a ActionType) IsValid() bool {
	switch a {
	case ActionCall, ActionResolvedCall:
		return true
	}
	return false
}

// IsValid checks if the GoalType is valid
func (g GoalType) IsValid() bool {
	switch g {
	case GoalTypeCalls, GoalTypeResolutions, GoalTypeSatisfaction, GoalTypePoints:
		return true
	}
	return false
}

// IsValid checks if the GoalPeriod is valid
func (p GoalPeriod) IsValid() bool {
	switch p {
	case GoalPeriodDaily, GoalPeriodWeekly, GoalPeriodMonthly:
		return true
	}
	return false
}

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	return r == RoleOperator || r == RoleManager
}
