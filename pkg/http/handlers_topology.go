package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"homewatt.xyz/home-energy-service/pkg/common"
	"homewatt.xyz/home-energy-service/pkg/models"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

type RoomView struct {
	RoomID   uint   `json:"room_id"`
	RoomName string `json:"room_name"`
}

func (rs *RestfulServer) ListRooms(c *gin.Context) {
	rooms, err := rs.Home.Topology.ListRooms(currentUserID(c))
	if err != nil {
		// the dashboard keeps rendering on read failures
		c.JSON(http.StatusOK, []RoomView{})
		return
	}

	c.JSON(http.StatusOK, common.Mapper(rooms, func(room models.Room) RoomView {
		return RoomView{RoomID: room.ID, RoomName: room.Name}
	}))
}

type AddRoomRequest struct {
	RoomName string `json:"room_name"`
}

var addRoomRequestSchema = z.Struct(z.Shape{
	"RoomName": z.String().Required(),
})

func (rs *RestfulServer) AddRoom(c *gin.Context) {
	var req AddRoomRequest
	if err := addRoomRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "room name is required"})
		return
	}

	room, err := rs.Home.Topology.CreateRoom(currentUserID(c), req.RoomName)
	if err != nil {
		respondResult(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "room added successfully",
		"room":    RoomView{RoomID: room.ID, RoomName: room.Name},
	})
}

func (rs *RestfulServer) GetRoom(c *gin.Context) {
	roomID, ok := paramID(c, "room_id")
	if !ok {
		return
	}

	room, err := rs.Home.Topology.GetRoom(currentUserID(c), roomID)
	if err != nil {
		respondResult(c, err, "")
		return
	}

	c.JSON(http.StatusOK, RoomView{RoomID: room.ID, RoomName: room.Name})
}

type EditRoomRequest struct {
	RoomName string `json:"room_name"`
}

var editRoomRequestSchema = z.Struct(z.Shape{
	"RoomName": z.String().Required(),
})

func (rs *RestfulServer) EditRoom(c *gin.Context) {
	roomID, ok := paramID(c, "room_id")
	if !ok {
		return
	}

	var req EditRoomRequest
	if err := editRoomRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "room name required"})
		return
	}

	err := rs.Home.Topology.RenameRoom(currentUserID(c), roomID, req.RoomName)
	respondResult(c, err, "room updated")
}

func (rs *RestfulServer) DeleteRoom(c *gin.Context) {
	roomID, ok := paramID(c, "room_id")
	if !ok {
		return
	}

	err := rs.Home.Topology.DeleteRoom(currentUserID(c), roomID)
	respondResult(c, err, "room and associated items deleted")
}

func (rs *RestfulServer) GetAppliance(c *gin.Context) {
	applianceID, ok := paramID(c, "appliance_id")
	if !ok {
		return
	}

	appliance, err := rs.Home.Topology.GetAppliance(currentUserID(c), applianceID)
	if err != nil {
		respondResult(c, err, "")
		return
	}

	c.JSON(http.StatusOK, appliance)
}

type AddApplianceRequest struct {
	ApplianceName      string  `json:"appliance_name"`
	RoomID             int     `json:"room_id"`
	Quantity           int     `json:"quantity"`
	MinPowerRatingWatt float64 `json:"min_power_rating_watt"`
	MaxPowerRatingWatt float64 `json:"max_power_rating_watt"`
}

var addApplianceRequestSchema = z.Struct(z.Shape{
	"ApplianceName":      z.String().Required(),
	"RoomID":             z.Int().Required(),
	"Quantity":           z.Int(),
	"MinPowerRatingWatt": z.Float64(),
	"MaxPowerRatingWatt": z.Float64().Required(),
})

func (rs *RestfulServer) AddAppliance(c *gin.Context) {
	var req AddApplianceRequest
	if err := addApplianceRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "missing required fields"})
		return
	}

	if req.RoomID < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "missing required fields"})
		return
	}

	appliance, err := rs.Home.Topology.CreateAppliance(currentUserID(c), &models.ApplianceInput{
		RoomID:             uint(req.RoomID),
		Name:               req.ApplianceName,
		Quantity:           req.Quantity,
		MinPowerRatingWatt: req.MinPowerRatingWatt,
		MaxPowerRatingWatt: req.MaxPowerRatingWatt,
	})
	if err != nil {
		respondResult(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "appliance added successfully",
		"appliance_id": appliance.ID,
	})
}

// EditApplianceRequest carries partial edits; absent fields stay nil and
// leave the column untouched.
type EditApplianceRequest struct {
	ApplianceName      *string  `json:"appliance_name"`
	Quantity           *int     `json:"quantity"`
	MinPowerRatingWatt *float64 `json:"min_power_rating_watt"`
	MaxPowerRatingWatt *float64 `json:"max_power_rating_watt"`
}

func (rs *RestfulServer) EditAppliance(c *gin.Context) {
	applianceID, ok := paramID(c, "appliance_id")
	if !ok {
		return
	}

	var req EditApplianceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid appliance fields"})
		return
	}

	err := rs.Home.Topology.UpdateAppliance(currentUserID(c), applianceID, &models.ApplianceUpdate{
		Name:               req.ApplianceName,
		Quantity:           req.Quantity,
		MinPowerRatingWatt: req.MinPowerRatingWatt,
		MaxPowerRatingWatt: req.MaxPowerRatingWatt,
	})
	respondResult(c, err, "appliance updated")
}

func (rs *RestfulServer) DeleteAppliance(c *gin.Context) {
	applianceID, ok := paramID(c, "appliance_id")
	if !ok {
		return
	}

	err := rs.Home.Topology.DeleteAppliance(currentUserID(c), applianceID)
	respondResult(c, err, "appliance and usage logs deleted")
}
