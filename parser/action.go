package parser

import (
	"fmt"
	"strings"

	"github.com/hnimtadd/vtwire/sequences/csi"
	"github.com/hnimtadd/vtwire/sequences/dcs"
	"github.com/hnimtadd/vtwire/sequences/esc"
	"github.com/hnimtadd/vtwire/sequences/osc"
)

// ActionType is an action that is taken when an event or
// state transition occurs
type ActionType int

const (
	ActionNone ActionType = iota
	ActionIgnore
	ActionPrint
	ActionExecute
	ActionCollect
	ActionParam
	ActionESCDispatch
	ActionCSIDispatch
	ActionDCSHook
	ActionDCSPut
	ActionDCSUnHook
	ActionOSCStart
	ActionOSCPut
	ActionOSCEnd
)

func (a ActionType) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionIgnore:
		return "Ignore"
	case ActionPrint:
		return "Print"
	case ActionExecute:
		return "Execute"
	case ActionCollect:
		return "Collect"
	case ActionParam:
		return "Param"
	case ActionESCDispatch:
		return "ESCDispatch"
	case ActionCSIDispatch:
		return "CSIDispatch"
	case ActionDCSHook:
		return "DCSHook"
	case ActionDCSPut:
		return "DCSPut"
	case ActionDCSUnHook:
		return "DCSUnHook"
	case ActionOSCStart:
		return "OSCStart"
	case ActionOSCPut:
		return "OSCPut"
	case ActionOSCEnd:
		return "OSCEnd"
	default:
		return "Unknown"
	}
}

// Action is the action that a caller of the parser is expected to
// take as a result of some input character
type Action struct {
	Type ActionType

	// Draw character to the screen.
	PrintData uint8

	// Execute the C0 or C1 function.
	ExecuteData uint8

	// Execute the CSI command.
	CSIDispatchData *csi.Command

	// Execute the ESC command.
	ESCDispatchData *esc.Command

	// Execute the OSC command.
	OSCDispatchData *osc.Command

	// DCS-related events
	DCSHookData *dcs.Hook
	DCSPutData  uint8
}

func (a *Action) String() string {
	if a == nil {
		return "{nil}"
	}
	builder := new(strings.Builder)
	fmt.Fprintf(builder, "{ .%s = ", a.Type.String())
	switch a.Type {
	case ActionPrint:
		fmt.Fprintf(builder, "0x%x", a.PrintData)
	case ActionExecute:
		fmt.Fprintf(builder, "0x%x", a.ExecuteData)
	case ActionCSIDispatch:
		if a.CSIDispatchData != nil {
			fmt.Fprintf(builder, "%s", a.CSIDispatchData.String())
		} else {
			fmt.Fprintf(builder, "nil")
		}
	case ActionESCDispatch:
		if a.ESCDispatchData != nil {
			fmt.Fprintf(builder, "%s", a.ESCDispatchData.String())
		} else {
			fmt.Fprintf(builder, "nil")
		}
	case ActionOSCEnd:
		if a.OSCDispatchData != nil {
			fmt.Fprintf(builder, "%s", a.OSCDispatchData.String())
		} else {
			fmt.Fprintf(builder, "nil")
		}
	case ActionDCSHook:
		if a.DCSHookData != nil {
			fmt.Fprintf(builder, "%s", a.DCSHookData.String())
		} else {
			fmt.Fprintf(builder, "nil")
		}
	case ActionDCSPut:
		fmt.Fprintf(builder, "0x%x", a.DCSPutData)
	}
	fmt.Fprintf(builder, "}")
	return builder.String()
}
