// Package system implements the system-control page: status lines with
// per-call degrade, confirmed restart/shutdown, and network diagnostics
// routed through the generic intent endpoint.
package system

import (
	"context"

	"go.uber.org/zap"

	"github.com/ziggyhome/panel/domain"
	"github.com/ziggyhome/panel/gateway"
	"github.com/ziggyhome/panel/view"
)

// Placeholders shown when an individual fetch fails.
const (
	statusPlaceholder = "Status unavailable"
	timePlaceholder   = "--:--"
	datePlaceholder   = "Unknown"
)

type Panel struct {
	gw      gateway.SystemGateway
	intents gateway.IntentGateway
	confirm view.Confirmer
	logger  *zap.Logger

	info  domain.SystemInfo
	alert view.Alert
}

func New(gw gateway.SystemGateway, intents gateway.IntentGateway, confirm view.Confirmer, logger *zap.Logger) *Panel {
	if confirm == nil {
		confirm = view.ApproveAll
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Panel{gw: gw, intents: intents, confirm: confirm, logger: logger}
}

// Load fetches status, time and date. Each line degrades to its
// placeholder on its own; a partial outage never fails the page.
func (p *Panel) Load(ctx context.Context) {
	p.info = domain.SystemInfo{
		Status: p.fetch(ctx, p.gw.Status, statusPlaceholder),
		Time:   p.fetch(ctx, p.gw.Time, timePlaceholder),
		Date:   p.fetch(ctx, p.gw.Date, datePlaceholder),
	}
}

func (p *Panel) fetch(ctx context.Context, call func(context.Context) (string, error), placeholder string) string {
	value, err := call(ctx)
	if err != nil {
		p.logger.Warn("system fetch degraded", zap.Error(err))
		return placeholder
	}
	return value
}

// Restart bounces the assistant after user confirmation.
func (p *Panel) Restart(ctx context.Context) error {
	if !p.confirm("Restart Ziggy? This will temporarily interrupt service.") {
		return nil
	}
	ack, err := p.gw.Restart(ctx)
	if err != nil {
		p.alert.Fail(err.Error())
		return err
	}
	p.alert.Succeed(ack)
	return nil
}

// Shutdown stops the assistant after user confirmation.
func (p *Panel) Shutdown(ctx context.Context) error {
	if !p.confirm("Shutdown Ziggy? This will stop the system.") {
		return nil
	}
	ack, err := p.gw.Shutdown(ctx)
	if err != nil {
		p.alert.Fail(err.Error())
		return err
	}
	p.alert.Succeed(ack)
	return nil
}

// PingTest runs a connectivity probe against the given host.
func (p *Panel) PingTest(ctx context.Context, host string) error {
	return p.NetworkAction(ctx, "ping_test", gateway.Params{"domain": host})
}

// NetworkAction routes a named network intent (get_wifi_status and
// friends) through the intent gateway and surfaces the result line.
func (p *Panel) NetworkAction(ctx context.Context, intent string, params gateway.Params) error {
	result, err := p.intents.Send(ctx, intent, params)
	if err != nil {
		p.alert.Fail(err.Error())
		return err
	}
	p.alert.Succeed(result)
	return nil
}

func (p *Panel) Info() domain.SystemInfo { return p.info }
func (p *Panel) Alert() *view.Alert      { return &p.alert }
