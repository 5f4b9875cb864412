// Package smarthome implements the device-control page: transient
// light/AC/TV drafts submitted as commands, plus an on-demand sensor
// fan-out where each room degrades independently.
package smarthome

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/ziggyhome/panel/domain"
	"github.com/ziggyhome/panel/gateway"
	"github.com/ziggyhome/panel/view"
)

// Readings longer than this render as Unavailable; the backend pads
// error prose into the message field and it would wreck the layout.
const maxReadingLen = 15

// LightDraft, ACDraft and TVDraft are view-local command drafts. They
// have no identity and are never persisted.
type LightDraft struct {
	Room       string
	Color      string
	Brightness int
}

type ACDraft struct {
	Temperature int
}

type TVDraft struct {
	Source int
}

type Panel struct {
	gw     gateway.SmartHomeGateway
	logger *zap.Logger
	rooms  []string

	Lights LightDraft
	AC     ACDraft
	TV     TVDraft

	mu       sync.RWMutex
	climate  map[string]domain.RoomClimate
	lightsOn map[string]bool
	acOn     bool
	tvOn     bool

	alert view.Alert
}

// New builds the page state over a fixed room list.
func New(gw gateway.SmartHomeGateway, rooms []string, logger *zap.Logger) *Panel {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Panel{
		gw:       gw,
		logger:   logger,
		rooms:    rooms,
		Lights:   LightDraft{Room: firstRoom(rooms), Color: "white", Brightness: 100},
		AC:       ACDraft{Temperature: 24},
		TV:       TVDraft{Source: 1},
		climate:  make(map[string]domain.RoomClimate),
		lightsOn: make(map[string]bool),
	}
}

func firstRoom(rooms []string) string {
	if len(rooms) == 0 {
		return ""
	}
	return rooms[0]
}

// ToggleLights flips one room's lights, tracking the assumed state
// locally since the backend reports none.
func (p *Panel) ToggleLights(ctx context.Context, room string) error {
	action := "turn_on"
	if p.lightsOn[room] {
		action = "turn_off"
	}
	ack, err := p.gw.ControlLights(ctx, room, action, nil)
	if err != nil {
		p.alert.Fail(err.Error())
		return err
	}
	p.lightsOn[room] = !p.lightsOn[room]
	p.alert.Succeed(ack)
	return nil
}

// SetLightColor submits the draft color for the draft room.
func (p *Panel) SetLightColor(ctx context.Context) error {
	ack, err := p.gw.ControlLights(ctx, p.Lights.Room, "set_color",
		gateway.Params{"color": p.Lights.Color})
	if err != nil {
		p.alert.Fail(err.Error())
		return err
	}
	p.alert.Succeed(ack)
	return nil
}

// SetLightBrightness submits the draft brightness for the draft room.
func (p *Panel) SetLightBrightness(ctx context.Context) error {
	ack, err := p.gw.ControlLights(ctx, p.Lights.Room, "set_brightness",
		gateway.Params{"brightness": p.Lights.Brightness})
	if err != nil {
		p.alert.Fail(err.Error())
		return err
	}
	p.alert.Succeed(ack)
	return nil
}

// ToggleAC flips the air conditioner.
func (p *Panel) ToggleAC(ctx context.Context) error {
	action := "turn_on"
	if p.acOn {
		action = "turn_off"
	}
	ack, err := p.gw.ControlAC(ctx, action, nil)
	if err != nil {
		p.alert.Fail(err.Error())
		return err
	}
	p.acOn = !p.acOn
	p.alert.Succeed(ack)
	return nil
}

// SetACTemperature submits the draft temperature.
func (p *Panel) SetACTemperature(ctx context.Context) error {
	ack, err := p.gw.ControlAC(ctx, "set_temperature",
		gateway.Params{"temperature": p.AC.Temperature})
	if err != nil {
		p.alert.Fail(err.Error())
		return err
	}
	p.alert.Succeed(ack)
	return nil
}

// ToggleTV flips the television.
func (p *Panel) ToggleTV(ctx context.Context) error {
	action := "turn_on"
	if p.tvOn {
		action = "turn_off"
	}
	ack, err := p.gw.ControlTV(ctx, action, nil)
	if err != nil {
		p.alert.Fail(err.Error())
		return err
	}
	p.tvOn = !p.tvOn
	p.alert.Succeed(ack)
	return nil
}

// SetTVSource submits the draft input source.
func (p *Panel) SetTVSource(ctx context.Context) error {
	ack, err := p.gw.ControlTV(ctx, "set_source",
		gateway.Params{"source": p.TV.Source})
	if err != nil {
		p.alert.Fail(err.Error())
		return err
	}
	p.alert.Succeed(ack)
	return nil
}

// RefreshSensors fans out across every room, fetching temperature and
// humidity. Rooms are independent: a failed room shows placeholders
// while the others keep their readings, and no failure escalates to a
// page-level error.
func (p *Panel) RefreshSensors(ctx context.Context) {
	type roomResult struct {
		room    string
		climate domain.RoomClimate
	}

	results := make([]roomResult, len(p.rooms))
	var wg sync.WaitGroup
	for i, room := range p.rooms {
		wg.Add(1)
		go func(i int, room string) {
			defer wg.Done()
			results[i] = roomResult{room: room, climate: p.readRoom(ctx, room)}
		}(i, room)
	}
	wg.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()
	for _, r := range results {
		p.climate[r.room] = r.climate
	}
}

func (p *Panel) readRoom(ctx context.Context, room string) domain.RoomClimate {
	climate := domain.RoomClimate{
		Temperature: domain.SensorUnknown,
		Humidity:    domain.SensorUnknown,
	}
	if temp, err := p.gw.Sensors(ctx, room, domain.SensorTemperature); err == nil {
		climate.Temperature = sanitizeReading(temp)
	} else {
		p.logger.Warn("sensor fetch failed",
			zap.String("room", room),
			zap.String("sensor", domain.SensorTemperature),
			zap.Error(err))
	}
	if hum, err := p.gw.Sensors(ctx, room, domain.SensorHumidity); err == nil {
		climate.Humidity = sanitizeReading(hum)
	} else {
		p.logger.Warn("sensor fetch failed",
			zap.String("room", room),
			zap.String("sensor", domain.SensorHumidity),
			zap.Error(err))
	}
	return climate
}

func sanitizeReading(reading string) string {
	if reading == "" {
		return domain.SensorUnknown
	}
	if len(reading) > maxReadingLen {
		return domain.SensorUnavailable
	}
	return reading
}

// Climate returns the last fetched readings for one room.
func (p *Panel) Climate(room string) (domain.RoomClimate, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	climate, ok := p.climate[room]
	return climate, ok
}

// LightsOn reports the locally tracked light state for a room.
func (p *Panel) LightsOn(room string) bool { return p.lightsOn[room] }

func (p *Panel) Rooms() []string    { return p.rooms }
func (p *Panel) Alert() *view.Alert { return &p.alert }
