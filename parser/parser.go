package parser

import (
	"math"

	"github.com/hnimtadd/vtwire/logger"
	"github.com/hnimtadd/vtwire/sequences/csi"
	"github.com/hnimtadd/vtwire/sequences/dcs"
	"github.com/hnimtadd/vtwire/sequences/esc"
	"github.com/hnimtadd/vtwire/sequences/osc"
	"github.com/hnimtadd/vtwire/utils"
)

const (
	MaxParams        = 24
	MaxIntermediates = 4
)

// VT-series parser for escape and control sequences.
//
// This is implemented directly as the state machine described on
// vt100.net: https://vt100.net/emu/dec_ansi_parser
type Parser struct {
	State State

	// intermediate tracking
	intermediates    [MaxIntermediates]uint8
	intermediatesIdx int

	// param tracking
	params      [MaxParams]uint16
	paramsIdx   int
	paramsSet   *utils.StaticBitSet
	paramAcc    uint16
	paramAccIdx int

	oscParser *osc.Parser

	logger logger.Logger
}

func NewParser() *Parser {
	return &Parser{
		State:            StateGround,
		intermediates:    [MaxIntermediates]uint8{},
		intermediatesIdx: 0,
		params:           [MaxParams]uint16{},
		paramsIdx:        0,
		paramAcc:         0,
		paramAccIdx:      0,
		paramsSet:        utils.NewStaticBitSet(MaxParams),
		oscParser:        osc.NewParser(),
		logger:           logger.Nop(),
	}
}

// SetLogger routes the parser's diagnostics to l instead of discarding them.
func (p *Parser) SetLogger(l logger.Logger) {
	if l != nil {
		p.logger = l
	}
}

// Next consumes the next character c and returns the actions to execute.
//
// # Up to 3 actions may need to be executed
//
// When going from one state to another state, the actions take place
// in this order
//
// 1. exit action from old state
//
// 2. transition action
//
// 3. entry action to new state
func (p *Parser) Next(c uint8) [3]*Action {
	effect := table[c][p.State]

	nextState := effect.state
	action := effect.action

	// after generating the actions, we set our next state
	defer func() {
		p.State = nextState
	}()

	actions := [3]*Action{}

	// Exit action from old state
	{
		var exitAction *Action = nil
		if p.State != nextState {
			switch p.State {
			case StateOSCString:
				// oscEnd, c is the byte that closed the string
				if cmd := p.oscParser.End(c); cmd != nil {
					exitAction = &Action{
						Type:            ActionOSCEnd,
						OSCDispatchData: cmd,
					}
				}
			case StateDCSPassthrough:
				// dcsUnhook
				exitAction = &Action{
					Type: ActionDCSUnHook,
				}
			}
		}
		actions[0] = exitAction
	}

	// transition action
	{
		actions[1] = p.doAction(action, c)
	}

	// entry action
	{
		var entryAction *Action = nil
		if p.State != nextState {
			switch nextState {
			case StateEscape, StateDCSEntry, StateCSIEntry:
				p.Clear()
			case StateOSCString:
				// oscStart
				p.oscParser.Reset()
			case StateDCSPassthrough:
				// hook, invoked when the final character of a DCS header
				// arrives

				// finalize parameters
				if p.paramAccIdx > 0 && p.paramsIdx < MaxParams {
					p.params[p.paramsIdx] = p.paramAcc
					p.paramsIdx += 1
				}
				entryAction = &Action{
					Type: ActionDCSHook,
					DCSHookData: &dcs.Hook{
						Intermediates: p.intermediates[:p.intermediatesIdx],
						Params:        p.params[:p.paramsIdx],
						Final:         c,
					},
				}
			}
		}
		actions[2] = entryAction
	}

	return actions
}

func (p *Parser) doAction(actionType ActionType, c uint8) (action *Action) {
	switch actionType {
	case ActionIgnore, ActionNone:
		return
	case ActionPrint:
		return &Action{Type: ActionPrint, PrintData: c}
	case ActionExecute:
		return &Action{Type: ActionExecute, ExecuteData: c}
	case ActionCollect:
		p.Collect(c)
		return
	case ActionParam:
		// Semicolon and colon separate parameters. If we encounter a
		// separator we need to store and move on to the next parameter.
		if c == ';' || c == ':' {
			// ignore too many parameters
			if p.paramsIdx >= MaxParams {
				return
			}

			// set param final value
			p.params[p.paramsIdx] = p.paramAcc
			if c == ':' {
				p.paramsSet.Set(p.paramsIdx)
			}
			p.paramsIdx += 1

			// reset current params value to 0
			p.paramAcc = 0
			p.paramAccIdx = 0
			return
		}

		// A numeric value. Add it to our accumulator, saturating at the
		// largest value a parameter can hold.
		acc, overflow := utils.AddWithOverflow(int(p.paramAcc)*10, int(c-'0'))
		if overflow {
			acc = math.MaxUint16
		}
		p.paramAcc = uint16(acc)
		p.paramAccIdx += 1

		// The client is expected to perform no action.
		return
	case ActionESCDispatch:
		return &Action{
			Type: ActionESCDispatch,
			ESCDispatchData: &esc.Command{
				Intermediates: p.intermediates[:p.intermediatesIdx],
				Final:         c,
			},
		}
	case ActionCSIDispatch:
		// Ignore too many parameters
		if p.paramsIdx >= MaxParams {
			p.logger.Warn("too many parameters, dropping sequence", "final", c)
			return
		}

		// Finalize parameters if we have one
		if p.paramAccIdx > 0 {
			p.params[p.paramsIdx] = p.paramAcc
			p.paramsIdx += 1
		}
		return &Action{
			Type: ActionCSIDispatch,
			CSIDispatchData: &csi.Command{
				Intermediates: p.intermediates[:p.intermediatesIdx],
				Params:        p.params[:p.paramsIdx],
				ParamsSet:     p.paramsSet,
				Final:         c,
			},
		}
	case ActionDCSPut:
		// dcsPut event inside StateDCSPassthrough
		return &Action{
			Type:       ActionDCSPut,
			DCSPutData: c,
		}
	case ActionOSCPut:
		p.oscParser.Next(c)
		return
	default:
		p.logger.Warn("Unknown action", "type", actionType)
		return nil
	}
}

func (p *Parser) Collect(c uint8) {
	if p.intermediatesIdx >= MaxIntermediates {
		p.logger.Warn("Too many intermediates, ignoring", "codepoint", c)
		return
	}
	p.intermediates[p.intermediatesIdx] = c
	p.intermediatesIdx += 1
}

func (p *Parser) Clear() {
	p.paramsIdx = 0
	p.paramAcc = 0
	p.paramAccIdx = 0
	p.paramsSet.Clear()
	p.intermediatesIdx = 0
}
