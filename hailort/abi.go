package hailort

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/amikos-tech/pure-hailort/internal/cabi"
)

// C descriptions of every record passed across the boundary, written from
// <hailo/hailort.h>. VerifyABI lays them out with the C rules of the host
// target and compares the result with the Go declarations.

func charArray(n int64) *cabi.Type { return cabi.Array(cabi.Char, n) }
func u8Array(n int64) *cabi.Type   { return cabi.Array(cabi.U8, n) }

func reserved(name string) *cabi.Type {
	return cabi.Struct(name, cabi.F("reserved", cabi.U8))
}

// ABIRecord pairs a C record description with its Go mirror.
type ABIRecord struct {
	C  *cabi.Type
	Go reflect.Type
}

func record[T any](c *cabi.Type) ABIRecord {
	return ABIRecord{C: c, Go: reflect.TypeFor[T]()}
}

// ABIRecords returns the descriptions checked by VerifyABI.
func ABIRecords() []ABIRecord {
	version := cabi.Struct("hailo_version_t",
		cabi.F("major", cabi.U32), cabi.F("minor", cabi.U32), cabi.F("revision", cabi.U32))
	fwVersion := cabi.Struct("hailo_firmware_version_t",
		cabi.F("major", cabi.U32), cabi.F("minor", cabi.U32), cabi.F("revision", cabi.U32))
	pcie := cabi.Struct("hailo_pcie_device_info_t",
		cabi.F("domain", cabi.U32), cabi.F("bus", cabi.U32), cabi.F("device", cabi.U32), cabi.F("func", cabi.U32))
	deviceID := cabi.Struct("hailo_device_id_t", cabi.F("id", charArray(MaxDeviceIDLength)))
	identity := cabi.Struct("hailo_device_identity_t",
		cabi.F("protocol_version", cabi.U32),
		cabi.F("fw_version", fwVersion),
		cabi.F("logger_version", cabi.U32),
		cabi.F("board_name_length", cabi.U8),
		cabi.F("board_name", charArray(MaxBoardNameLength)),
		cabi.F("is_release", cabi.Bool),
		cabi.F("extended_context_switch_buffer", cabi.Bool),
		cabi.F("extended_fw_check", cabi.Bool),
		cabi.F("device_architecture", cabi.Enum),
		cabi.F("serial_number_length", cabi.U8),
		cabi.F("serial_number", charArray(MaxSerialNumberLength)),
		cabi.F("part_number_length", cabi.U8),
		cabi.F("part_number", charArray(MaxPartNumberLength)),
		cabi.F("product_name_length", cabi.U8),
		cabi.F("product_name", charArray(MaxProductNameLength)))
	coreInfo := cabi.Struct("hailo_core_information_t",
		cabi.F("is_release", cabi.Bool),
		cabi.F("extended_context_switch_buffer", cabi.Bool),
		cabi.F("extended_fw_check", cabi.Bool),
		cabi.F("fw_version", fwVersion))
	features := cabi.Struct("hailo_device_supported_features_t",
		cabi.F("ethernet", cabi.Bool), cabi.F("mipi", cabi.Bool), cabi.F("pcie", cabi.Bool),
		cabi.F("current_monitoring", cabi.Bool), cabi.F("mdio", cabi.Bool), cabi.F("power_measurement", cabi.Bool))
	extended := cabi.Struct("hailo_extended_device_information_t",
		cabi.F("neural_network_core_clock_rate", cabi.U32),
		cabi.F("supported_features", features),
		cabi.F("boot_source", cabi.Enum),
		cabi.F("soc_id", u8Array(SocIDLength)),
		cabi.F("lcs", cabi.U8),
		cabi.F("eth_mac_address", u8Array(EthMACLength)),
		cabi.F("unit_level_tracking_id", u8Array(UnitLevelTrackingBytesLength)),
		cabi.F("soc_pm_values", u8Array(SocPMValuesBytesLength)),
		cabi.F("gpio_mask", cabi.U16))
	fwUserConfig := cabi.Struct("hailo_fw_user_config_information_t",
		cabi.F("version", cabi.U32), cabi.F("entry_count", cabi.U32), cabi.F("total_size", cabi.U32))
	vdeviceParams := cabi.Struct("hailo_vdevice_params_t",
		cabi.F("device_count", cabi.U32),
		cabi.F("device_ids", cabi.Ptr()),
		cabi.F("scheduling_algorithm", cabi.Enum),
		cabi.F("group_id", cabi.Ptr()),
		cabi.F("multi_process_service", cabi.Bool))
	format := cabi.Struct("hailo_format_t",
		cabi.F("type", cabi.Enum), cabi.F("order", cabi.Enum), cabi.F("flags", cabi.Enum))
	quant := cabi.Struct("hailo_quant_info_t",
		cabi.F("qp_zp", cabi.Float), cabi.F("qp_scale", cabi.Float),
		cabi.F("limvals_min", cabi.Float), cabi.F("limvals_max", cabi.Float))
	transform := cabi.Struct("hailo_transform_params_t",
		cabi.F("transform_mode", cabi.Enum), cabi.F("user_buffer_format", format))
	pcieIn := reserved("hailo_pcie_input_stream_params_t")
	pcieOut := reserved("hailo_pcie_output_stream_params_t")
	integratedIn := reserved("hailo_integrated_input_stream_params_t")
	integratedOut := reserved("hailo_integrated_output_stream_params_t")
	streamParams := cabi.Struct("hailo_stream_parameters_t",
		cabi.F("stream_interface", cabi.Enum),
		cabi.F("direction", cabi.Enum),
		cabi.F("flags", cabi.Enum),
		cabi.F("params", cabi.Union("",
			cabi.F("pcie_input_params", pcieIn),
			cabi.F("pcie_output_params", pcieOut),
			cabi.F("integrated_input_params", integratedIn),
			cabi.F("integrated_output_params", integratedOut))))
	streamParamsByName := cabi.Struct("hailo_stream_parameters_by_name_t",
		cabi.F("name", charArray(MaxStreamNameSize)), cabi.F("stream_params", streamParams))
	vstreamParams := cabi.Struct("hailo_vstream_params_t",
		cabi.F("user_buffer_format", format),
		cabi.F("timeout_ms", cabi.U32),
		cabi.F("queue_size", cabi.U32),
		cabi.F("vstream_stats_flags", cabi.Enum),
		cabi.F("pipeline_elements_stats_flags", cabi.Enum))
	inVStreamByName := cabi.Struct("hailo_input_vstream_params_by_name_t",
		cabi.F("name", charArray(MaxStreamNameSize)), cabi.F("params", vstreamParams))
	outVStreamByName := cabi.Struct("hailo_output_vstream_params_by_name_t",
		cabi.F("name", charArray(MaxStreamNameSize)), cabi.F("params", vstreamParams))
	outNameByGroup := cabi.Struct("hailo_output_vstream_name_by_group_t",
		cabi.F("name", charArray(MaxStreamNameSize)), cabi.F("pipeline_group_index", cabi.U8))
	shape3D := cabi.Struct("hailo_3d_image_shape_t",
		cabi.F("height", cabi.U32), cabi.F("width", cabi.U32), cabi.F("features", cabi.U32))
	plane := cabi.Struct("hailo_pix_buffer_plane_t",
		cabi.F("bytes_used", cabi.U32),
		cabi.F("plane_size", cabi.U32),
		cabi.F("", cabi.Union("", cabi.F("user_ptr", cabi.Ptr()), cabi.F("fd", cabi.Int))))
	pixBuffer := cabi.Struct("hailo_pix_buffer_t",
		cabi.F("index", cabi.U32),
		cabi.F("planes", cabi.Array(plane, MaxNumberOfPlanes)),
		cabi.F("number_of_planes", cabi.U32),
		cabi.F("memory_type", cabi.Enum))
	dmaBuffer := cabi.Struct("hailo_dma_buffer_t", cabi.F("fd", cabi.Int), cabi.F("size", cabi.SizeT()))
	bufferParams := cabi.Struct("hailo_buffer_parameters_t", cabi.F("flags", cabi.Enum))
	defuse := cabi.Struct("hailo_nms_defuse_info_t",
		cabi.F("class_group_index", cabi.U32), cabi.F("original_name", charArray(MaxStreamNameSize)))
	nmsInfo := cabi.Struct("hailo_nms_info_t",
		cabi.F("number_of_classes", cabi.U32),
		cabi.F("max_bboxes_per_class", cabi.U32),
		cabi.F("max_bboxes_total", cabi.U32),
		cabi.F("bbox_size", cabi.U32),
		cabi.F("chunks_per_frame", cabi.U32),
		cabi.F("burst_size", cabi.U32),
		cabi.F("is_defused", cabi.Bool),
		cabi.F("defuse_info", defuse),
		cabi.F("burst_type", cabi.Enum))
	nmsFuse := cabi.Struct("hailo_nms_fuse_input_t",
		cabi.F("buffer", cabi.Ptr()), cabi.F("size", cabi.SizeT()), cabi.F("nms_info", nmsInfo))
	nmsShape := cabi.Struct("hailo_nms_shape_t",
		cabi.F("number_of_classes", cabi.U32),
		cabi.F("max_bboxes_per_class", cabi.U32),
		cabi.F("max_bboxes_total", cabi.U32),
		cabi.F("max_accumulated_mask_size", cabi.U32))
	bbox := cabi.Struct("hailo_bbox_t",
		cabi.F("y_min", cabi.U16), cabi.F("x_min", cabi.U16), cabi.F("y_max", cabi.U16),
		cabi.F("x_max", cabi.U16), cabi.F("score", cabi.U16))
	bboxF := cabi.Struct("hailo_bbox_float32_t",
		cabi.F("y_min", cabi.Float), cabi.F("x_min", cabi.Float), cabi.F("y_max", cabi.Float),
		cabi.F("x_max", cabi.Float), cabi.F("score", cabi.Float))
	rect := cabi.Struct("hailo_rectangle_t",
		cabi.F("y_min", cabi.Float), cabi.F("x_min", cabi.Float), cabi.F("y_max", cabi.Float), cabi.F("x_max", cabi.Float))
	detection := cabi.Struct("hailo_detection_t",
		cabi.F("y_min", cabi.Float), cabi.F("x_min", cabi.Float), cabi.F("y_max", cabi.Float),
		cabi.F("x_max", cabi.Float), cabi.F("score", cabi.Float), cabi.F("class_id", cabi.U16))
	byteMask := cabi.Struct("hailo_detection_with_byte_mask_t",
		cabi.F("box", rect),
		cabi.F("score", cabi.Float),
		cabi.F("class_id", cabi.U16),
		cabi.F("mask_size", cabi.SizeT()),
		cabi.F("mask", cabi.Ptr()),
		cabi.F("mask_offset", cabi.SizeT()))
	completion := func(name string) *cabi.Type {
		return cabi.Struct(name,
			cabi.F("status", cabi.Enum),
			cabi.F("buffer_addr", cabi.Ptr()),
			cabi.F("buffer_size", cabi.SizeT()),
			cabi.F("opaque", cabi.Ptr()))
	}

	rxError := cabi.Struct("hailo_rx_error_notification_message_t",
		cabi.F("error", cabi.U32), cabi.F("queue_number", cabi.U32), cabi.F("rx_errors_count", cabi.U32))
	debug := cabi.Struct("hailo_debug_notification_message_t",
		cabi.F("connection_status", cabi.U32), cabi.F("connection_type", cabi.U32),
		cabi.F("vdma_is_active", cabi.U32), cabi.F("host_port", cabi.U32), cabi.F("host_ip_addr", cabi.U32))
	dataflow := cabi.Struct("hailo_health_monitor_dataflow_shutdown_notification_message_t",
		cabi.F("ts0_temperature", cabi.Float), cabi.F("ts1_temperature", cabi.Float))
	tempAlarm := cabi.Struct("hailo_health_monitor_temperature_alarm_notification_message_t",
		cabi.F("temperature_zone", cabi.Enum), cabi.F("alarm_ts_id", cabi.U32),
		cabi.F("ts0_temperature", cabi.Float), cabi.F("ts1_temperature", cabi.Float))
	overcurrent := cabi.Struct("hailo_health_monitor_overcurrent_alert_notification_message_t",
		cabi.F("overcurrent_zone", cabi.Enum), cabi.F("exceeded_alert_threshold", cabi.Float),
		cabi.F("is_last_overcurrent_violation_reached", cabi.Bool))
	lcuECC := cabi.Struct("hailo_health_monitor_lcu_ecc_error_notification_message_t",
		cabi.F("cluster_error", cabi.U16))
	cpuECC := cabi.Struct("hailo_health_monitor_cpu_ecc_notification_message_t",
		cabi.F("memory_bitmap", cabi.U32))
	breakpoint := cabi.Struct("hailo_context_switch_breakpoint_reached_message_t",
		cabi.F("network_group_index", cabi.U8), cabi.F("batch_index", cabi.U32),
		cabi.F("context_index", cabi.U16), cabi.F("action_index", cabi.U16))
	clockChanged := cabi.Struct("hailo_health_monitor_clock_changed_notification_message_t",
		cabi.F("previous_clock", cabi.U32), cabi.F("current_clock", cabi.U32))
	inferDone := cabi.Struct("hailo_hw_infer_manager_infer_done_notification_message_t",
		cabi.F("infer_cycles", cabi.U32))
	cacheOffset := cabi.Struct("hailo_start_update_cache_offset_notification_message_t",
		cabi.F("cache_id_bitmask", cabi.U64))
	runTimeError := cabi.Struct("hailo_context_switch_run_time_error_message_t",
		cabi.F("exit_status", cabi.U32), cabi.F("network_group_index", cabi.U8),
		cabi.F("batch_index", cabi.U16), cabi.F("context_index", cabi.U16), cabi.F("action_index", cabi.U16))
	throttling := cabi.Struct("hailo_throttling_state_change_message_t", cabi.F("new_state", cabi.U16))
	notification := cabi.Struct("hailo_notification_t",
		cabi.F("id", cabi.Enum),
		cabi.F("sequence", cabi.U32),
		cabi.F("body", cabi.Union("hailo_notification_message_parameters_t",
			cabi.F("rx_error_notification", rxError),
			cabi.F("debug_notification", debug),
			cabi.F("health_monitor_dataflow_shutdown_notification", dataflow),
			cabi.F("health_monitor_temperature_alarm_notification", tempAlarm),
			cabi.F("health_monitor_overcurrent_alert_notification", overcurrent),
			cabi.F("health_monitor_lcu_ecc_error_notification", lcuECC),
			cabi.F("health_monitor_cpu_ecc_notification", cpuECC),
			cabi.F("context_switch_breakpoint_reached_notification", breakpoint),
			cabi.F("health_monitor_clock_changed_notification", clockChanged),
			cabi.F("hw_infer_manager_infer_done_notification", inferDone),
			cabi.F("start_update_cache_offset_notification", cacheOffset),
			cabi.F("context_switch_run_time_error", runTimeError),
			cabi.F("throttling_state_change", throttling))))

	streamShapes := cabi.Struct("hailo_stream_info_shapes", cabi.F("shape", shape3D), cabi.F("hw_shape", shape3D))
	streamInfo := cabi.Struct("hailo_stream_info_t",
		cabi.F("", cabi.Union("", cabi.F("", streamShapes), cabi.F("nms_info", nmsInfo))),
		cabi.F("hw_data_bytes", cabi.U32),
		cabi.F("hw_frame_size", cabi.U32),
		cabi.F("format", format),
		cabi.F("direction", cabi.Enum),
		cabi.F("index", cabi.U8),
		cabi.F("name", charArray(MaxStreamNameSize)),
		cabi.F("quant_info", quant),
		cabi.F("is_mux", cabi.Bool))
	vstreamInfo := cabi.Struct("hailo_vstream_info_t",
		cabi.F("name", charArray(MaxStreamNameSize)),
		cabi.F("network_name", charArray(MaxNetworkNameSize)),
		cabi.F("direction", cabi.Enum),
		cabi.F("format", format),
		cabi.F("", cabi.Union("", cabi.F("shape", shape3D), cabi.F("nms_shape", nmsShape))),
		cabi.F("quant_info", quant))

	powerData := cabi.Struct("hailo_power_measurement_data_t",
		cabi.F("average_value", cabi.Float), cabi.F("average_time_value_milliseconds", cabi.Float),
		cabi.F("min_value", cabi.Float), cabi.F("max_value", cabi.Float),
		cabi.F("total_number_of_samples", cabi.U32))
	chipTemp := cabi.Struct("hailo_chip_temperature_info_t",
		cabi.F("ts0_temperature", cabi.Float), cabi.F("ts1_temperature", cabi.Float), cabi.F("sample_count", cabi.U16))
	throttlingLevel := cabi.Struct("hailo_throttling_level_t",
		cabi.F("temperature_threshold", cabi.Float),
		cabi.F("hysteresis_temperature_threshold", cabi.Float),
		cabi.F("throttling_nn_clock_freq", cabi.U32))
	health := cabi.Struct("hailo_health_info_t",
		cabi.F("overcurrent_protection_active", cabi.Bool),
		cabi.F("current_overcurrent_zone", cabi.U8),
		cabi.F("red_overcurrent_threshold", cabi.Float),
		cabi.F("overcurrent_throttling_active", cabi.Bool),
		cabi.F("temperature_throttling_active", cabi.Bool),
		cabi.F("current_temperature_zone", cabi.U8),
		cabi.F("current_temperature_throttling_level", cabi.I8),
		cabi.F("temperature_throttling_levels", cabi.Array(throttlingLevel, MaxTemperatureThrottlingLevelsNumber)),
		cabi.F("orange_temperature_threshold", cabi.I32),
		cabi.F("orange_hysteresis_temperature_threshold", cabi.I32),
		cabi.F("red_temperature_threshold", cabi.I32),
		cabi.F("red_hysteresis_temperature_threshold", cabi.I32),
		cabi.F("requested_overcurrent_clock_freq", cabi.U32),
		cabi.F("requested_temperature_clock_freq", cabi.U32))
	perf := cabi.Struct("hailo_performance_stats_t",
		cabi.F("cpu_utilization", cabi.Float),
		cabi.F("ram_size_total", cabi.I64),
		cabi.F("ram_size_used", cabi.I64),
		cabi.F("nnc_utilization", cabi.Float),
		cabi.F("ddr_noc_total_transactions", cabi.I32),
		cabi.F("dsp_utilization", cabi.I32))
	healthStats := cabi.Struct("hailo_health_stats_t",
		cabi.F("on_die_temperature", cabi.Float), cabi.F("on_die_voltage", cabi.I32), cabi.F("bist_failure_mask", cabi.I32))
	networkParams := cabi.Struct("hailo_network_parameters_t", cabi.F("batch_size", cabi.U16))
	networkParamsByName := cabi.Struct("hailo_network_parameters_by_name_t",
		cabi.F("name", charArray(MaxNetworkNameSize)), cabi.F("network_params", networkParams))
	ngParams := cabi.Struct("hailo_configure_network_group_params_t",
		cabi.F("name", charArray(MaxNetworkGroupNameSize)),
		cabi.F("batch_size", cabi.U16),
		cabi.F("power_mode", cabi.Enum),
		cabi.F("latency", cabi.Enum),
		cabi.F("enable_kv_cache", cabi.Bool),
		cabi.F("stream_params_by_name_count", cabi.SizeT()),
		cabi.F("stream_params_by_name", cabi.Array(streamParamsByName, MaxStreamsCount)),
		cabi.F("network_params_by_name_count", cabi.SizeT()),
		cabi.F("network_params_by_name", cabi.Array(networkParamsByName, MaxNetworksInNetworkGroup)))
	configure := cabi.Struct("hailo_configure_params_t",
		cabi.F("network_group_params_count", cabi.SizeT()),
		cabi.F("network_group_params", cabi.Array(ngParams, MaxNetworkGroups)))
	ngInfo := cabi.Struct("hailo_network_group_info_t",
		cabi.F("name", charArray(MaxNetworkGroupNameSize)), cabi.F("is_multi_context", cabi.Bool))
	layerName := cabi.Struct("hailo_layer_name_t", cabi.F("name", charArray(MaxStreamNameSize)))
	networkInfo := cabi.Struct("hailo_network_info_t", cabi.F("name", charArray(MaxNetworkNameSize)))
	rawBuffer := cabi.Struct("hailo_stream_raw_buffer_t", cabi.F("buffer", cabi.Ptr()), cabi.F("size", cabi.SizeT()))
	rawBufferByName := cabi.Struct("hailo_stream_raw_buffer_by_name_t",
		cabi.F("name", charArray(MaxStreamNameSize)), cabi.F("raw_buffer", rawBuffer))
	latency := cabi.Struct("hailo_latency_measurement_result_t", cabi.F("avg_hw_latency_ms", cabi.Double))
	rateLimit := cabi.Struct("hailo_rate_limit_t",
		cabi.F("stream_name", charArray(MaxStreamNameSize)), cabi.F("rate", cabi.U32))
	i2c := cabi.Struct("hailo_i2c_slave_config_t",
		cabi.F("endianness", cabi.Enum),
		cabi.F("slave_address", cabi.U16),
		cabi.F("register_address_size", cabi.U8),
		cabi.F("bus_index", cabi.U8),
		cabi.F("should_hold_bus", cabi.Bool))

	return []ABIRecord{
		record[Version](version),
		record[FirmwareVersion](fwVersion),
		record[PCIeDeviceInfo](pcie),
		record[DeviceID](deviceID),
		record[DeviceIdentity](identity),
		record[CoreInformation](coreInfo),
		record[DeviceSupportedFeatures](features),
		record[ExtendedDeviceInformation](extended),
		record[FWUserConfigInformation](fwUserConfig),
		record[VDeviceParams](vdeviceParams),
		record[Format](format),
		record[QuantInfo](quant),
		record[TransformParams](transform),
		record[DemuxParams](reserved("hailo_demux_params_t")),
		record[PCIeInputStreamParams](pcieIn),
		record[PCIeOutputStreamParams](pcieOut),
		record[IntegratedInputStreamParams](integratedIn),
		record[IntegratedOutputStreamParams](integratedOut),
		record[StreamParameters](streamParams),
		record[StreamParametersByName](streamParamsByName),
		record[VStreamParams](vstreamParams),
		record[InputVStreamParamsByName](inVStreamByName),
		record[OutputVStreamParamsByName](outVStreamByName),
		record[OutputVStreamNameByGroup](outNameByGroup),
		record[ImageShape3D](shape3D),
		record[PixBufferPlane](plane),
		record[PixBuffer](pixBuffer),
		record[DMABuffer](dmaBuffer),
		record[BufferParameters](bufferParams),
		record[NMSDefuseInfo](defuse),
		record[NMSInfo](nmsInfo),
		record[NMSFuseInput](nmsFuse),
		record[NMSShape](nmsShape),
		record[BBox](bbox),
		record[BBoxFloat32](bboxF),
		record[Rectangle](rect),
		record[Detection](detection),
		record[DetectionWithByteMask](byteMask),
		record[StreamWriteAsyncCompletionInfo](completion("hailo_stream_write_async_completion_info_t")),
		record[StreamReadAsyncCompletionInfo](completion("hailo_stream_read_async_completion_info_t")),
		record[RxErrorNotificationMessage](rxError),
		record[DebugNotificationMessage](debug),
		record[HealthMonitorDataflowShutdownNotificationMessage](dataflow),
		record[HealthMonitorTemperatureAlarmNotificationMessage](tempAlarm),
		record[HealthMonitorOvercurrentAlertNotificationMessage](overcurrent),
		record[HealthMonitorLCUECCErrorNotificationMessage](lcuECC),
		record[HealthMonitorCPUECCNotificationMessage](cpuECC),
		record[ContextSwitchBreakpointReachedMessage](breakpoint),
		record[HealthMonitorClockChangedNotificationMessage](clockChanged),
		record[HWInferManagerInferDoneNotificationMessage](inferDone),
		record[StartUpdateCacheOffsetNotificationMessage](cacheOffset),
		record[ContextSwitchRunTimeErrorMessage](runTimeError),
		record[ThrottlingStateChangeMessage](throttling),
		record[Notification](notification),
		record[StreamInfoShapes](streamShapes),
		record[StreamInfo](streamInfo),
		record[VStreamInfo](vstreamInfo),
		record[PowerMeasurementData](powerData),
		record[ChipTemperatureInfo](chipTemp),
		record[ThrottlingLevel](throttlingLevel),
		record[HealthInfo](health),
		record[PerformanceStats](perf),
		record[HealthStats](healthStats),
		record[NetworkParameters](networkParams),
		record[NetworkParametersByName](networkParamsByName),
		record[ConfigureNetworkGroupParams](ngParams),
		record[ConfigureParams](configure),
		record[ActivateNetworkGroupParams](reserved("hailo_activate_network_group_params_t")),
		record[NetworkGroupInfo](ngInfo),
		record[LayerName](layerName),
		record[NetworkInfo](networkInfo),
		record[StreamRawBuffer](rawBuffer),
		record[StreamRawBufferByName](rawBufferByName),
		record[LatencyMeasurementResult](latency),
		record[RateLimit](rateLimit),
		record[I2CSlaveConfig](i2c),
	}
}

// VerifyABI lays out every record with the C rules of the host target and
// returns a joined error naming each size, alignment or field offset that
// differs from the Go declaration.
func VerifyABI() error {
	target, err := cabi.Host()
	if err != nil {
		return err
	}
	return verifyRecords(cabi.New(target), ABIRecords())
}

func verifyRecords(engine *cabi.Engine, records []ABIRecord) error {
	var errs []error
	for _, r := range records {
		if err := verifyRecord(engine, r); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func verifyRecord(engine *cabi.Engine, r ABIRecord) error {
	l, err := engine.LayoutOf(r.C)
	if err != nil {
		return fmt.Errorf("%s: %w", r.C.Name, err)
	}
	var errs []error
	if got := r.Go.Size(); uintptr(l.Size) != got {
		errs = append(errs, fmt.Errorf("%s: C size %d, Go %s size %d", r.C.Name, l.Size, r.Go.Name(), got))
	}
	if got := r.Go.Align(); l.Align != got {
		errs = append(errs, fmt.Errorf("%s: C align %d, Go %s align %d", r.C.Name, l.Align, r.Go.Name(), got))
	}
	if len(r.C.Fields) != r.Go.NumField() {
		errs = append(errs, fmt.Errorf("%s: C has %d fields, Go %s has %d", r.C.Name, len(r.C.Fields), r.Go.Name(), r.Go.NumField()))
		return errors.Join(errs...)
	}
	for i := range r.C.Fields {
		f := r.Go.Field(i)
		if uintptr(l.FieldOffsets[i]) != f.Offset {
			errs = append(errs, fmt.Errorf("%s.%s: C offset %d, Go %s.%s offset %d",
				r.C.Name, r.C.Fields[i].Name, l.FieldOffsets[i], r.Go.Name(), f.Name, f.Offset))
		}
	}
	return errors.Join(errs...)
}
