package aerofs

import "context"

// ListDevices lists the devices registered under a user's account.
func (c *Client) ListDevices(ctx context.Context, email string) ([]Device, error) {
	var devices []Device
	if _, err := c.getJSON(ctx, "users/"+escape(email)+"/devices", "", nil, &devices); err != nil {
		return nil, err
	}
	return devices, nil
}

// GetDevice retrieves the attributes of a device.
func (c *Client) GetDevice(ctx context.Context, deviceID DeviceID) (*Device, error) {
	device := new(Device)
	if _, err := c.getJSON(ctx, "devices/"+escape(deviceID.String()), "", nil, device); err != nil {
		return nil, err
	}
	return device, nil
}

// UpdateDevice renames a device.
func (c *Client) UpdateDevice(ctx context.Context, deviceID DeviceID, name string) (*Device, error) {
	body := struct {
		Name string `json:"name"`
	}{name}

	device := new(Device)
	if err := c.putJSON(ctx, "devices/"+escape(deviceID.String()), body, device, nil); err != nil {
		return nil, err
	}
	return device, nil
}

// GetDeviceStatus retrieves the reachability of a device as last observed
// by the appliance.
func (c *Client) GetDeviceStatus(ctx context.Context, deviceID DeviceID) (*DeviceStatus, error) {
	status := new(DeviceStatus)
	if _, err := c.getJSON(ctx, "devices/"+escape(deviceID.String())+"/status", "", nil, status); err != nil {
		return nil, err
	}
	return status, nil
}
